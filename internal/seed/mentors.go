package seed

import (
	"github.com/derya/mentorlink/internal/app/models"
)

// MentorProfile pairs the user account fields of a main mentor with
// the mentor profile that should be created for them.
type MentorProfile struct {
	FirstName string
	LastName  string
	Email     string
	Mentor    models.Mentor
}

func strPtr(s string) *string { return &s }

// MainMentors returns the canonical mentor profiles created by the
// mentor seeding endpoint. The Email field doubles as the identity
// used to find or create the owning user account.
func MainMentors() []MentorProfile {
	return []MentorProfile{
		{
			FirstName: "Sarah",
			LastName:  "Chen",
			Email:     "sarah.chen@stu.uni-munich.de",
			Mentor: models.Mentor{
				Bio:         "International student from Germany. Happy to help with academic transition, coding projects, and campus life.",
				Languages:   []string{"English", "German"},
				Majors:      []string{"Software Engineering"},
				Interests:   []string{"Academic Support", "Career Guidance", "Social Integration"},
				Country:     "Germany",
				Flag:        "🇩🇪",
				Semester:    5,
				YearOfStudy: "5th Semester",
				Image:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
				Email:       "sarah.chen@stu.uni-munich.de",
				IsAvailable: true,
				MaxMentees:  5,
				LinkedIn:    strPtr("https://linkedin.com/in/sarahchen"),
				Instagram:   strPtr("@sarah_codes"),
				About: []string{
					"Hi! I'm Sarah, an international student from Germany currently in my fifth semester studying Software Engineering. I remember how overwhelming it was when I first arrived, so I joined the mentoring program to help make your transition smoother.",
					"I'm passionate about coding, problem-solving, and building connections across cultures. Outside of academics, I enjoy photography, hiking, and exploring local coffee shops. I'm here to support you academically and help you feel at home on campus.",
				},
				AcademicBackground: &models.AcademicBackground{
					Major:           "Software Engineering",
					CurrentSemester: 5,
					FocusAreas:      "Software Development, Web Applications, Cloud Computing",
					Experience:      "Teaching Assistant for Intro to Programming, Member of Coding Club",
				},
				PersonalInfo: &models.PersonalInfo{
					Languages:   "English (Fluent), German (Native)",
					Nationality: "Germany",
					Hobbies:     "Photography, Hiking, Coffee tasting, Reading tech blogs",
				},
				MentorshipFocus: &models.MentorshipFocus{
					WhoCanHelp: "First-year students, international students, students in Software Engineering or related majors, anyone feeling overwhelmed by university life",
					Topics: []string{
						"Academic transition and study strategies",
						"Programming help and coding projects",
						"Navigating campus resources",
						"Cultural adjustment and making friends",
						"Time management and work-life balance",
					},
				},
			},
		},
		{
			FirstName: "Mehmet",
			LastName:  "Yılmaz",
			Email:     "mehmet.yilmaz@stu.uni-munich.de",
			Mentor: models.Mentor{
				Bio:         "Passionate about cybersecurity and ethical hacking. Can help with security fundamentals and technical problem-solving.",
				Languages:   []string{"Turkish", "English", "German"},
				Majors:      []string{"Cyber Security"},
				Interests:   []string{"Academic Support", "Career Guidance"},
				Country:     "Turkey",
				Flag:        "🇹🇷",
				Semester:    6,
				YearOfStudy: "6th Semester",
				Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
				Email:       "mehmet.yilmaz@stu.uni-munich.de",
				IsAvailable: true,
				MaxMentees:  4,
				LinkedIn:    strPtr("https://linkedin.com/in/mehmetyilmaz"),
				About: []string{
					"Hello! I'm Mehmet, a Cyber Security student from Turkey in my sixth semester. I'm passionate about protecting digital systems and helping others understand the importance of security.",
					"I enjoy working on capture-the-flag competitions and sharing my knowledge with fellow students. Let me help you navigate the technical challenges of cybersecurity studies.",
				},
				AcademicBackground: &models.AcademicBackground{
					Major:           "Cyber Security",
					CurrentSemester: 6,
					FocusAreas:      "Network Security, Ethical Hacking, Cryptography",
					Experience:      "Security Club President, CTF Competition Participant",
				},
				PersonalInfo: &models.PersonalInfo{
					Languages:   "Turkish (Native), English (Fluent), German (Intermediate)",
					Nationality: "Turkey",
					Hobbies:     "CTF competitions, Gaming, Technology podcasts",
				},
				MentorshipFocus: &models.MentorshipFocus{
					WhoCanHelp: "Students interested in cybersecurity, technical students, anyone wanting to improve their digital security knowledge",
					Topics: []string{
						"Cybersecurity fundamentals",
						"Programming for security",
						"Study techniques for technical subjects",
						"Career planning in tech",
						"Networking and professional development",
					},
				},
			},
		},
		{
			FirstName: "Amara",
			LastName:  "Okafor",
			Email:     "amara.okafor@stu.uni-munich.de",
			Mentor: models.Mentor{
				Bio:         "Experienced in data analysis and machine learning. Friendly and approachable. Can help with math, statistics, and programming.",
				Languages:   []string{"English", "Luganda"},
				Majors:      []string{"Data Science And AI"},
				Interests:   []string{"Academic Support", "Social Integration"},
				Country:     "Uganda",
				Flag:        "🇺🇬",
				Semester:    4,
				YearOfStudy: "4th Semester",
				Image:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=150&h=150&fit=crop",
				Email:       "amara.okafor@stu.uni-munich.de",
				IsAvailable: true,
				MaxMentees:  4,
				About: []string{
					"Hi! I'm Amara from Uganda, currently studying Data Science and AI. I love working with data and finding patterns that tell meaningful stories.",
					"I'm here to help you understand the fundamentals of data science, from statistics to machine learning. Don't hesitate to reach out!",
				},
				AcademicBackground: &models.AcademicBackground{
					Major:           "Data Science And AI",
					CurrentSemester: 4,
					FocusAreas:      "Machine Learning, Data Visualization, Statistical Analysis",
					Experience:      "Research Assistant in AI Lab, Data Science Club Member",
				},
				PersonalInfo: &models.PersonalInfo{
					Languages:   "English (Fluent), Luganda (Native)",
					Nationality: "Uganda",
					Hobbies:     "Data visualization, Reading research papers, Community outreach",
				},
				MentorshipFocus: &models.MentorshipFocus{
					WhoCanHelp: "First-year students, anyone interested in data science or AI, students struggling with math or statistics",
					Topics: []string{
						"Data science fundamentals",
						"Python programming for data analysis",
						"Academic stress management",
						"Study strategies for STEM subjects",
						"Cultural adjustment and making friends",
					},
				},
			},
		},
		{
			FirstName: "Luca",
			LastName:  "Rossi",
			Email:     "luca.rossi@stu.uni-munich.de",
			Mentor: models.Mentor{
				Bio:         "Senior engineering student with experience in automation and Industry 4.0. Can help with technical courses and project management.",
				Languages:   []string{"Italian", "English", "German"},
				Majors:      []string{"Digital Industrial Engineering"},
				Interests:   []string{"Academic Support", "Career Guidance"},
				Country:     "Italy",
				Flag:        "🇮🇹",
				Semester:    7,
				YearOfStudy: "7th Semester",
				Image:       "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop",
				Email:       "luca.rossi@stu.uni-munich.de",
				IsAvailable: true,
				MaxMentees:  3,
				About: []string{
					"Ciao! I'm Luca from Italy, a Digital Industrial Engineering student in my seventh semester. I'm fascinated by how technology is transforming manufacturing and industry.",
					"I've worked on several Industry 4.0 projects and can help you understand the intersection of engineering, technology, and business.",
				},
				AcademicBackground: &models.AcademicBackground{
					Major:           "Digital Industrial Engineering",
					CurrentSemester: 7,
					FocusAreas:      "Automation, IoT, Process Optimization, Industry 4.0",
					Experience:      "Internship at Manufacturing Company, Engineering Society Member",
				},
				PersonalInfo: &models.PersonalInfo{
					Languages:   "Italian (Native), English (Fluent), German (Advanced)",
					Nationality: "Italy",
					Hobbies:     "Robotics, 3D printing, Cycling, Italian cooking",
				},
				MentorshipFocus: &models.MentorshipFocus{
					WhoCanHelp: "Engineering students, anyone interested in automation or Industry 4.0, students looking for internship advice",
					Topics: []string{
						"Engineering fundamentals",
						"Technical project management",
						"Internship and career planning",
						"Research and lab work",
						"Balancing academics and personal life",
					},
				},
			},
		},
	}
}
