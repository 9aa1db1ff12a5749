package essay

// Sentinel values meaning "no filter on this field".
const (
	AllColleges = "All Colleges"
	AllPrompts  = "All Prompts"
	AllMajors   = "All Majors"
)

// Colleges is the selectable college catalog served to clients. Submission
// forms pick from it; filtering treats AllColleges as a wildcard.
var Colleges = []string{
	AllColleges,
	"Harvard University",
	"Yale University",
	"Princeton University",
	"Columbia University",
	"University of Pennsylvania",
	"Dartmouth College",
	"Brown University",
	"Cornell University",
	"Stanford University",
	"MIT",
	"California Institute of Technology",
	"University of Chicago",
	"Northwestern University",
	"Duke University",
	"Johns Hopkins University",
	"Rice University",
	"Carnegie Mellon University",
	"UC Berkeley",
	"UCLA",
	"UC San Diego",
	"University of Michigan",
	"University of Virginia",
	"University of Texas at Austin",
	"Georgia Institute of Technology",
	"University of Washington",
	"New York University",
	"Boston University",
	"Northeastern University",
	"Williams College",
	"Amherst College",
	"Swarthmore College",
	"Pomona College",
	"Harvey Mudd College",
}

var Prompts = []string{
	AllPrompts,
	"Personal Growth",
	"Identity/Background",
	"Community/Impact",
	"Leadership",
	"Creativity",
	"Academic Interest / Why Major",
	"Why Us / Fit",
	"Challenge / Setback",
	"Additional Info",
	"Short Takes / Quick Hits",
	"Roommate / Personality",
}

var Majors = []string{
	AllMajors,
	"Computer Science",
	"Software Engineering",
	"Data Science",
	"Cybersecurity",
	"Mechanical Engineering",
	"Electrical Engineering",
	"Civil Engineering",
	"Chemical Engineering",
	"Aerospace Engineering",
	"Biomedical Engineering",
	"Physics",
	"Chemistry",
	"Mathematics",
	"Statistics",
	"Biology",
	"Neuroscience",
	"Pre-Med",
	"Public Health",
	"Nursing",
	"Business Administration",
	"Economics",
	"Finance",
	"Marketing",
	"Psychology",
	"Sociology",
	"Political Science",
	"International Relations",
	"English Literature",
	"Creative Writing",
	"Philosophy",
	"History",
	"Architecture",
	"Fine Arts",
	"Graphic Design",
	"Music",
	"Communications",
	"Journalism",
	"Education",
	"Undecided",
}
