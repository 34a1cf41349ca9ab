// Package resume defines the in-memory resume document model and the pure
// text-normalization helpers shared by the renderer and the AI gateway.
package resume

// PresentSentinel is the reserved end-date value for an ongoing position.
// It is the only non-date value accepted in a date field.
const PresentSentinel = "Present"

// PersonalDetails holds the contact block of a resume.
// All fields are plain strings; optional fields may be empty.
type PersonalDetails struct {
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Website     string `json:"website"`
}

// WorkExperience is a single position. Description is free text; lines
// prefixed with "-" are treated as bullet items by SplitBullets.
type WorkExperience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Education is a single degree or program entry.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
	Details        string `json:"details"`
}

// Skill is a named skill with a proficiency rating in [1,5].
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// MinSkillLevel and MaxSkillLevel bound the Skill.Level rating.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

// ClampLevel forces a proficiency rating into [MinSkillLevel, MaxSkillLevel].
func ClampLevel(level int) int {
	if level < MinSkillLevel {
		return MinSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return level
}

// Document is the canonical in-memory representation of a resume.
// List order is insertion order and is significant for rendering.
type Document struct {
	PersonalDetails PersonalDetails  `json:"personal_details"`
	Summary         string           `json:"summary"`
	AboutMe         string           `json:"about_me,omitempty"`
	Experience      []WorkExperience `json:"experience"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Activities      string           `json:"activities,omitempty"`
	Leadership      string           `json:"leadership,omitempty"`
}

// Clone returns a deep copy of the document. Export and AI calls operate on
// a snapshot so in-flight work never observes later edits.
func (d *Document) Clone() *Document {
	out := *d
	out.Experience = append([]WorkExperience(nil), d.Experience...)
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	return &out
}

// Seed returns the sample document every editing session starts from.
func Seed() *Document {
	return &Document{
		PersonalDetails: PersonalDetails{
			FullName:    "John Doe",
			Title:       "Senior Software Engineer",
			Email:       "john.doe@example.com",
			PhoneNumber: "123-456-7890",
			Address:     "Anytown, USA",
			Website:     "johndoe.dev",
		},
		Summary: "Innovative and deadline-driven Software Engineer with 5+ years of experience " +
			"designing and developing user-centered applications from initial concept to final, polished deliverable.",
		AboutMe: "I am passionate about designing digital experiences that are both visually stunning " +
			"and intuitive, and always strive to create designs that delight and engage users.",
		Experience: []WorkExperience{
			{
				ID:        "exp1",
				JobTitle:  "Senior Software Engineer",
				Company:   "Tech Solutions Inc.",
				Location:  "Metropolis, USA",
				StartDate: "2021-01-01",
				EndDate:   PresentSentinel,
				Description: "- Lead the development of a new microservices-based architecture, improving system scalability by 40%.\n" +
					"- Mentor junior engineers, conduct code reviews, and promote best practices in software development.",
			},
		},
		Education: []Education{
			{
				ID:             "edu1",
				Degree:         "B.S. in Computer Science",
				Institution:    "State University",
				Location:       "Townsville, USA",
				GraduationDate: "2019-05-01",
				Details:        "GPA: 3.8/4.0, Magna Cum Laude\nRelevant Coursework:\n- Data Structures & Algorithms\n- Web Development\n- Database Systems",
			},
		},
		Skills: []Skill{
			{ID: "skill1", Name: "TypeScript", Level: 5},
			{ID: "skill2", Name: "React", Level: 5},
			{ID: "skill3", Name: "Node.js", Level: 4},
			{ID: "skill4", Name: "System Design", Level: 4},
		},
		Activities: "Literature • Environmental conservation • Art • Yoga • Skiing • Travel",
		Leadership: "Served as Vice President of the Project Management Club at university",
	}
}
