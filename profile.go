package main

type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	School  string   `json:"school"`
	Degree  string   `json:"degree"`
	Period  string   `json:"period"`
	Details []string `json:"details"`
}

type ProjectSummary struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Profile struct {
	Name           string           `json:"name"`
	Title          string           `json:"title"`
	Avatar         string           `json:"avatar"`
	LinkedIn       string           `json:"linkedin,omitempty"`
	CV             string           `json:"cv,omitempty"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	Experience     []Experience     `json:"experience"`
	Education      []Education      `json:"education"`
	Certifications []string         `json:"certifications"`
	Projects       []ProjectSummary `json:"projects"`
	Achievements   []string         `json:"achievements"`
}

// newProfile returns the static profile with the configurable links filled in.
func newProfile(avatar, linkedin, cv string) Profile {
	p := baseProfile
	p.Avatar = avatar
	p.LinkedIn = linkedin
	p.CV = cv
	return p
}

var baseProfile = Profile{
	Name:    "Arnav Puggal",
	Title:   "Full‑Stack Developer",
	Summary: "Full‑stack engineer focused on crafting reliable backends and animated, accessible interfaces. I enjoy shipping end‑to‑end: APIs, data, and polished UX.",
	Skills: []string{
		"JavaScript",
		"TypeScript",
		"React",
		"Node.js",
		"Express",
		"CSS",
		"Sass",
		"Framer Motion",
		"Git",
		"REST APIs",
		"MongoDB",
		"PostgreSQL",
		"Docker",
		"CI/CD",
	},
	Experience: []Experience{
		{
			Role:    "Co-Founder and Vice President",
			Company: "HackerRank Campus Crew SRMIST",
			Period:  "Sep 2025 - Present",
			Highlights: []string{
				"Co-founded the first-ever HackerRank Campus Crew student chapter in India at SRMIST",
				"Leading startup initiatives and software design projects",
				"Managing campus-wide programming competitions and workshops",
			},
		},
		{
			Role:    "Committee Member",
			Company: "Aaruush, SRM University",
			Period:  "Jun 2025 - Present",
			Highlights: []string{
				"Managing social media and digital media communications",
				"Handling media relations and production for university events",
				"Coordinating with various departments for event management",
			},
		},
		{
			Role:    "Student Volunteer",
			Company: "Aaruush, SRM University",
			Period:  "Sep 2024 - Jun 2025",
			Highlights: []string{
				"Served as PR team member for university techno-management fest",
				"Assisted in event coordination and student engagement activities",
				"Contributed to successful execution of national-level competitions",
			},
		},
		{
			Role:    "Student Volunteer",
			Company: "SRM Alumni Affairs",
			Period:  "Feb 2025 - Present",
			Highlights: []string{
				"Facilitating connections between current students and alumni",
				"Organizing networking events and mentorship programs",
				"Supporting alumni engagement initiatives",
			},
		},
		{
			Role:    "Python Developer",
			Company: "Sololearn",
			Period:  "Dec 2024",
			Highlights: []string{
				"Engaged in comprehensive training on Python fundamentals, including variables, data types, and control flow",
				"Developed problem-solving skills through coding challenges and exercises",
				"Explored data structures and algorithms with hands-on experience",
				"Utilized libraries like NumPy and Pandas for data analysis and visualization",
			},
		},
		{
			Role:    "C Developer",
			Company: "Sololearn",
			Period:  "Nov 2024 - Dec 2024",
			Highlights: []string{
				"Developed efficient and optimized C code for various software applications, enhancing performance by 30%",
				"Collaborated with cross-functional teams to troubleshoot and resolve technical issues",
				"Conducted rigorous testing and documentation, ensuring high-quality code deployment",
			},
		},
		{
			Role:    "Basic Civil and Mechanical Engineer",
			Company: "SRMIST, Kattankulathur, Chennai",
			Period:  "Aug 2024 - Dec 2024",
			Highlights: []string{
				"Developed comprehensive plans and specifications for infrastructure projects",
				"Conducted feasibility studies and site assessments for project viability",
				"Designed mechanical systems and components using CAD software",
				"Implemented sustainable practices in design and construction",
			},
		},
		{
			Role:    "Software Developer",
			Company: "TEACHNOOK (TEACHSCAPE ONLINE LEARNING SERVICES)",
			Period:  "Sep 2024 - Nov 2024",
			Highlights: []string{
				"Developed web applications and services using modern technologies",
				"Worked on responsive web design and user experience optimization",
				"Implemented web analytics and content management systems",
				"Collaborated on software infrastructure and design projects",
			},
		},
		{
			Role:    "Software Developer",
			Company: "Wipro",
			Period:  "Sep 2024 - Nov 2024",
			Highlights: []string{
				"Developed front-end applications using HTML, CSS, and JavaScript",
				"Worked on web engineering and responsive design projects",
				"Implemented web analytics and content writing solutions",
				"Contributed to web application development and optimization",
			},
		},
		{
			Role:    "Graphic Designer",
			Company: "BGS International Public School",
			Period:  "Aug 2023 - Aug 2024",
			Highlights: []string{
				"Developed graphics for company functions and events",
				"Collaborated with stakeholders to understand event vision and objectives",
				"Created design concepts aligned with company branding and themes",
				"Utilized AutoCAD, Final Cut Pro, and other design tools",
			},
		},
		{
			Role:    "Informatics Specialist",
			Company: "BGS International Public School",
			Period:  "Aug 2023 - Aug 2024",
			Highlights: []string{
				"Leveraged data analysis to understand audience preferences",
				"Applied UX design principles to enhance engagement",
				"Collaborated with cross-functional teams for branding strategies",
				"Utilized Tableau, SQL, and Python for data management",
			},
		},
		{
			Role:    "Vice Informatics Coordinator",
			Company: "BGS International Public School",
			Period:  "Aug 2022 - Aug 2023",
			Highlights: []string{
				"Developed engaging graphics for company functions",
				"Collaborated with marketing and event planning teams",
				"Applied user experience design principles for impactful graphics",
				"Drove informed design decisions through data analysis",
			},
		},
		{
			Role:    "Junior Software Developer, Robotics Engineer",
			Company: "Ethnotech Academic Solutions",
			Period:  "Jul 2018 - Aug 2023",
			Highlights: []string{
				"Developed software to monitor and optimize renewable energy systems",
				"Created algorithms to analyze energy production and consumption data",
				"Worked on UAV drone modeling and flight management systems",
				"Developed user interfaces for monitoring energy usage and efficiency",
			},
		},
	},
	Education: []Education{
		{
			School: "SRMIST, Kattankulathur, Chennai, Tamil Nadu",
			Degree: "Bachelor of Technology - BTech, Computer Software Engineering",
			Period: "Aug 2024 - Aug 2028",
			Details: []string{
				"Software Coding",
				"Industrial Robotics",
				"Data Structures & Algorithms",
				"Databases",
				"Operating Systems",
				"Networks",
			},
		},
		{
			School: "BGS International Public School - India",
			Degree: "High School Diploma",
			Period: "2010 - 2024",
			Details: []string{
				"Grade: Montessori/UKG to 10th",
				"Grade: 12th",
				"Activities and societies: Basketball, cricket player and robotician",
				"Computer Science Club - Programming competitions and coding workshops",
				"Mathematics Olympiad Team - Problem-solving and analytical thinking",
				"Science Fair Coordinator - Organized annual science exhibitions",
				"Debate Society - Public speaking and logical reasoning",
				"Student Council Member - Leadership and organizational skills",
				"Robotics Club - Building and programming autonomous robots",
				"Quiz Team Captain - General knowledge and quick thinking",
				"Library Assistant - Research and information management",
				"Peer Tutoring Program - Teaching mathematics and science to juniors",
				"Environmental Club - Sustainability and project management",
				"Cultural Committee - Event planning and coordination",
				"Sports Committee - Team management and event organization",
				"Tech Support Team - Computer maintenance and troubleshooting",
			},
		},
	},
	Certifications: []string{
		"HackerRank Certifications",
		"AWS QLI Developers Workshop",
		"Python Certification (Sololearn)",
		"C Certification (Sololearn)",
		"SRM Basic Civil and Mechanical Award 2024-2025",
		"TEACHNOOK Certification of Internship Completion 2024-25",
		"WIPRO Certification of Internship Completion 2024-25",
		"BGS Graphics Designer Award 2023-2024",
		"BGS Informatics Coordinator Award 2023-24",
	},
	Projects: []ProjectSummary{
		{
			Name:         "SRM VR Campus Connect",
			Description:  "Virtual Reality platform for campus navigation and student engagement",
			Technologies: []string{"Unity", "C#", "VR Development", "3D Modeling"},
		},
		{
			Name:         "Automated Turing Machine",
			Description:  "Implementation of computational theory concepts with automated processing",
			Technologies: []string{"Python", "Algorithm Design", "Computational Theory"},
		},
		{
			Name:         "B-Breaker AI Chatbot",
			Description:  "Intelligent chatbot system with natural language processing capabilities",
			Technologies: []string{"Python", "NLP", "Machine Learning", "AI"},
		},
		{
			Name:         "Health Companion LLM",
			Description:  "Large Language Model for healthcare assistance and medical guidance",
			Technologies: []string{"Python", "LLM", "Healthcare AI", "Natural Language Processing"},
		},
		{
			Name:         "Automated Target Locking System",
			Description:  "Computer vision system for automated target detection and tracking",
			Technologies: []string{"Python", "Computer Vision", "OpenCV", "Machine Learning"},
		},
		{
			Name:         "UAV Swarm System",
			Description:  "Coordinated drone swarm management and control system",
			Technologies: []string{"Python", "Drone Technology", "Swarm Intelligence", "Control Systems"},
		},
		{
			Name:         "Moody Foody App",
			Description:  "Mobile application for mood-based food recommendations",
			Technologies: []string{"React Native", "Node.js", "MongoDB", "AI/ML"},
		},
		{
			Name:         "AI Song Writer and Composer",
			Description:  "Artificial intelligence system for automated music composition",
			Technologies: []string{"Python", "AI/ML", "Music Theory", "Audio Processing"},
		},
		{
			Name:         "AI Agent Builder",
			Description:  "Platform for creating and deploying intelligent AI agents",
			Technologies: []string{"Python", "AI/ML", "Agent Systems", "API Development"},
		},
		{
			Name:         "AI SaaS",
			Description:  "Software as a Service platform with AI-powered features",
			Technologies: []string{"React", "Node.js", "Cloud Computing", "AI/ML"},
		},
		{
			Name:         "Phoenix Protocol",
			Description:  "Advanced communication protocol for secure data transmission",
			Technologies: []string{"C++", "Network Programming", "Security", "Protocol Design"},
		},
	},
	Achievements: []string{
		"Won 2nd place in Zonal level science activities and expos organised by directorate of education Delhi",
		"Won 2nd place in Central level science expo organised by directorate of education Delhi",
		"Won 3rd place in robo soccer tournament by Mount Carmel School New Delhi",
		"Was entitled Junior Robotics engineer and junior game developer as a part of BGS CREATIVE AND DESIGN LABS PROJECT",
		"Was appreciated for outstanding performance in graphics and was entitled as the informatics coordinator",
		"Won 3rd position in Unleash Hack India: Renewable energy and water access for rural development at SSRMIST",
		"Won first position in reuse and remodel product at SRMIST",
		"Was presented certificate of merit in Techknow 2024-2025",
	},
}
