package scraper

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	firstNames = []string{"Alex", "Jamie", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn", "Skyler", "Rohan", "Priya", "Arjun", "Neha"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Rodriguez", "Wilson", "Patel", "Sharma", "Kumar", "Singh"}

	emailDomains = []string{"gmail.com", "outlook.com", "yahoo.com", "hotmail.com"}

	techDegrees     = []string{"B.Tech", "M.Tech", "B.Sc", "M.Sc"}
	generalDegrees  = []string{"BBA", "MBA", "B.A", "M.A", "B.Sc", "M.Sc"}
	techTitles      = []string{"Software Engineer", "Full Stack Developer", "Data Scientist", "Product Manager", "DevOps Engineer"}
	generalTitles   = []string{"Marketing Specialist", "Business Analyst", "Project Manager", "HR Manager", "Operations Manager"}
	techSkills      = []string{"JavaScript", "Python", "React", "Node.js", "AWS", "Machine Learning", "Data Science"}
	businessSkills  = []string{"Marketing", "Finance", "Project Management", "Leadership", "Strategy", "Sales"}
	generalSkills   = []string{"Research", "Analysis", "Communication", "Problem Solving", "Critical Thinking"}
	companies       = []string{"TCS", "Infosys", "Wipro", "Google", "Microsoft", "Amazon", "Accenture", "Deloitte"}
	locations       = []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad", "Pune", "Chennai", "Remote"}
	departmentNames = []string{"Computer Science", "Engineering", "Business", "Arts", "Science", "Medicine", "Law"}
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Generator fabricates mock profiles. The random source is injectable so
// tests can pin the output.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SplitKeywords turns a comma- or space-separated keyword string into a
// cleaned slice.
func SplitKeywords(keywords string) []string {
	fields := strings.FieldsFunc(keywords, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Generate produces limit mock profiles for the given source, steering
// department, college and batch year from the keywords when present.
func (g *Generator) Generate(keywords []string, source string, limit int) []Profile {
	keywordStr := strings.ToLower(strings.Join(keywords, " "))

	college := "University"
	for _, k := range keywords {
		lower := strings.ToLower(k)
		if strings.Contains(lower, "college") || strings.Contains(lower, "university") || strings.Contains(lower, "institute") {
			college = k
			break
		}
	}

	department := "Computer Science"
	for _, dept := range departmentNames {
		if strings.Contains(keywordStr, strings.ToLower(dept)) {
			department = dept
			break
		}
	}

	batchYear := 0
	if match := yearPattern.FindString(keywordStr); match != "" {
		batchYear, _ = strconv.Atoi(match)
	}

	profiles := make([]Profile, 0, limit)
	for i := 0; i < limit; i++ {
		profiles = append(profiles, g.profile(source, college, department, batchYear))
	}
	return profiles
}

func (g *Generator) profile(source, college, department string, batchYear int) Profile {
	firstName := firstNames[g.rng.Intn(len(firstNames))]
	lastName := lastNames[g.rng.Intn(len(lastNames))]
	fullName := firstName + " " + lastName

	graduationYear := batchYear
	if graduationYear == 0 {
		graduationYear = time.Now().Year() - g.rng.Intn(10) - 1
	}

	technical := strings.Contains(department, "Computer") || strings.Contains(department, "Engineering")

	degrees := generalDegrees
	titles := generalTitles
	if technical {
		degrees = techDegrees
		titles = techTitles
	}

	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName),
		g.rng.Intn(100), emailDomains[g.rng.Intn(len(emailDomains))])

	phone := fmt.Sprintf("+1-%d-%d-%d", g.rng.Intn(900)+100, g.rng.Intn(900)+100, g.rng.Intn(9000)+1000)

	designation := titles[g.rng.Intn(len(titles))]
	company := companies[g.rng.Intn(len(companies))]

	handle := strings.ToLower(firstName) + "-" + strings.ToLower(lastName) + strconv.Itoa(g.rng.Intn(1000))
	profileURL := "https://www.linkedin.com/in/" + handle
	if source == SourceNaukri {
		profileURL = "https://www.naukri.com/mnjuser/profile/" + handle
	}

	return Profile{
		Name:        fullName,
		Email:       email,
		Phone:       phone,
		Batch:       graduationYear,
		Degree:      degrees[g.rng.Intn(len(degrees))],
		Designation: designation,
		Company:     company,
		Location:    locations[g.rng.Intn(len(locations))],
		Bio:         fmt.Sprintf("%s at %s, %s graduate of %s (class of %d)", designation, company, department, college, graduationYear),
		ProfileURL:  profileURL,
		Skills:      g.pickSkills(department),
		Source:      source,
	}
}

func (g *Generator) pickSkills(department string) []string {
	pool := generalSkills
	switch {
	case strings.Contains(department, "Computer"), strings.Contains(department, "Engineering"):
		pool = techSkills
	case strings.Contains(department, "Business"):
		pool = businessSkills
	}

	picked := make([]string, 0, 3)
	for len(picked) < 3 {
		skill := pool[g.rng.Intn(len(pool))]
		duplicate := false
		for _, p := range picked {
			if p == skill {
				duplicate = true
				break
			}
		}
		if !duplicate {
			picked = append(picked, skill)
		}
	}
	return picked
}
