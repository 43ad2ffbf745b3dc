package intake

// Catalogs offered by the skill selectors and select fields.
var (
	TechnicalSkillOptions = []string{
		"JavaScript", "Python", "Java", "C++", "C#", "PHP", "Ruby",
		"HTML/CSS", "React", "Angular", "Vue.js", "Node.js", "Django",
		"Flask", "Spring Boot", "SQL", "MongoDB", "AWS", "Azure",
		"GCP", "Docker", "Kubernetes", "Git", "TensorFlow", "PyTorch",
		"Data Analysis", "Machine Learning", "Deep Learning", "NLP",
		"Computer Vision", "Blockchain", "iOS Development", "Android Development",
	}

	SoftSkillOptions = []string{
		"Communication", "Leadership", "Teamwork", "Problem Solving",
		"Critical Thinking", "Time Management", "Adaptability",
		"Creativity", "Emotional Intelligence", "Conflict Resolution",
		"Negotiation", "Presentation Skills", "Decision Making",
		"Project Management", "Mentoring",
	}

	InterestOptions = []string{
		"Web Development", "Mobile Development", "Data Science",
		"Machine Learning", "AI", "Blockchain", "Cloud Computing",
		"DevOps", "Cybersecurity", "Game Development", "UI/UX Design",
		"Product Management", "Digital Marketing", "IoT",
		"Augmented Reality", "Virtual Reality", "Robotics",
	}

	DegreeOptions = []string{"High School", "Diploma", "Bachelor's", "Master's", "Ph.D."}
)

// ExperienceOption is one entry of the years-of-experience select.
type ExperienceOption struct {
	Years int
	Label string
}

var ExperienceOptions = []ExperienceOption{
	{0, "0 (Fresher)"},
	{1, "1 year"},
	{2, "2 years"},
	{3, "3 years"},
	{4, "4 years"},
	{5, "5 years"},
	{6, "6-8 years"},
	{9, "9-12 years"},
	{13, "13+ years"},
}

// ExperienceLabel returns the label for years, or the bucket it falls into.
func ExperienceLabel(years int) string {
	label := ExperienceOptions[0].Label
	for _, o := range ExperienceOptions {
		if years >= o.Years {
			label = o.Label
		}
	}
	return label
}
