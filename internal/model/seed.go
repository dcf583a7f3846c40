package model

import "time"

func daysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}

func daysAhead(n int) time.Time {
	return time.Now().Add(time.Duration(n) * 24 * time.Hour)
}

// SeedUsers returns the fixed demo accounts. Each call returns a fresh
// slice so callers can't mutate each other's bootstrap data.
func SeedUsers() []User {
	return []User{
		{
			ID:        "admin1",
			Name:      "Admin User",
			Email:     "admin@hirehub.com",
			Role:      RoleAdmin,
			CreatedAt: time.Now(),
		},
		{
			ID:        "emp1",
			Name:      "Sarah Johnson",
			Email:     "sarah@techcorp.com",
			Role:      RoleEmployer,
			CreatedAt: daysAgo(30),
			Employer: &EmployerProfile{
				CompanyName:        "TechCorp Solutions",
				CompanyLogo:        "🏢",
				CompanyDescription: "Leading technology solutions provider specializing in AI and cloud computing. We build the future of enterprise software.",
				CompanyWebsite:     "https://techcorp.example.com",
				CompanySize:        "500-1000",
				Industry:           "Technology",
				CompanyLocation:    "San Francisco, CA",
				IsApproved:         true,
			},
		},
		{
			ID:        "emp2",
			Name:      "Michael Chen",
			Email:     "michael@designhub.com",
			Role:      RoleEmployer,
			CreatedAt: daysAgo(25),
			Employer: &EmployerProfile{
				CompanyName:        "DesignHub Creative",
				CompanyLogo:        "🎨",
				CompanyDescription: "Award-winning creative agency focused on brand identity, UX/UI design, and digital marketing campaigns.",
				CompanyWebsite:     "https://designhub.example.com",
				CompanySize:        "50-200",
				Industry:           "Design & Creative",
				CompanyLocation:    "New York, NY",
				IsApproved:         true,
			},
		},
		{
			ID:        "emp3",
			Name:      "Emily Rodriguez",
			Email:     "emily@greenenergy.com",
			Role:      RoleEmployer,
			CreatedAt: daysAgo(20),
			Employer: &EmployerProfile{
				CompanyName:        "GreenEnergy Inc",
				CompanyLogo:        "🌱",
				CompanyDescription: "Pioneering renewable energy solutions for a sustainable future. Solar, wind, and battery storage technologies.",
				CompanyWebsite:     "https://greenenergy.example.com",
				CompanySize:        "200-500",
				Industry:           "Energy & Environment",
				CompanyLocation:    "Austin, TX",
				IsApproved:         true,
			},
		},
		{
			ID:        "emp4",
			Name:      "David Park",
			Email:     "david@financeplus.com",
			Role:      RoleEmployer,
			CreatedAt: daysAgo(15),
			Employer: &EmployerProfile{
				CompanyName:        "FinancePlus",
				CompanyLogo:        "💰",
				CompanyDescription: "Modern fintech company revolutionizing personal and business banking with cutting-edge technology.",
				CompanyWebsite:     "https://financeplus.example.com",
				CompanySize:        "1000+",
				Industry:           "Finance & Banking",
				CompanyLocation:    "Chicago, IL",
				IsApproved:         true,
			},
		},
		{
			ID:        "stu1",
			Name:      "Alex Thompson",
			Email:     "alex@student.com",
			Role:      RoleStudent,
			CreatedAt: daysAgo(10),
			Student: &StudentProfile{
				Skills:    []string{"React", "TypeScript", "Node.js", "Python"},
				Education: "BS Computer Science - Stanford University",
				Bio:       "Passionate software engineering student looking for full-time opportunities.",
				Phone:     "+1-555-0101",
			},
		},
	}
}

// SeedJobs returns the fixed demo job posts owned by the seed employers.
func SeedJobs() []Job {
	return []Job{
		{
			ID:          "job1",
			EmployerID:  "emp1",
			CompanyName: "TechCorp Solutions",
			CompanyLogo: "🏢",
			Title:       "Senior Frontend Developer",
			Description: "We are looking for an experienced Frontend Developer to join our team and help build next-generation web applications. You will work with React, TypeScript, and modern web technologies to create beautiful, performant user interfaces.",
			Location:    "San Francisco, CA",
			Type:        JobTypeFullTime,
			Salary:      "$120,000 - $160,000",
			Requirements: []string{
				"5+ years React experience", "TypeScript proficiency",
				"CSS/Tailwind expertise", "Git version control",
			},
			Category:   "Engineering",
			PostedDate: daysAgo(2),
			Deadline:   daysAhead(28),
			Status:     JobStatusActive,
		},
		{
			ID:          "job2",
			EmployerID:  "emp1",
			CompanyName: "TechCorp Solutions",
			CompanyLogo: "🏢",
			Title:       "Backend Engineer - Python",
			Description: "Join our backend team to design and implement scalable microservices. You will work on distributed systems that process millions of requests daily.",
			Location:    "Remote",
			Type:        JobTypeFullTime,
			Salary:      "$130,000 - $170,000",
			Requirements: []string{
				"Python/Django experience", "SQL & NoSQL databases",
				"REST API design", "Cloud services experience",
			},
			Category:   "Engineering",
			PostedDate: daysAgo(5),
			Deadline:   daysAhead(25),
			Status:     JobStatusActive,
		},
		{
			ID:          "job3",
			EmployerID:  "emp2",
			CompanyName: "DesignHub Creative",
			CompanyLogo: "🎨",
			Title:       "UX/UI Designer",
			Description: "We need a talented UX/UI Designer to create intuitive and visually stunning designs for our clients. You will work on a variety of projects from mobile apps to enterprise platforms.",
			Location:    "New York, NY",
			Type:        JobTypeFullTime,
			Salary:      "$90,000 - $130,000",
			Requirements: []string{
				"Figma expertise", "Portfolio required",
				"User research skills", "3+ years experience",
			},
			Category:   "Design",
			PostedDate: daysAgo(1),
			Deadline:   daysAhead(30),
			Status:     JobStatusActive,
		},
		{
			ID:          "job4",
			EmployerID:  "emp2",
			CompanyName: "DesignHub Creative",
			CompanyLogo: "🎨",
			Title:       "Graphic Design Intern",
			Description: "Great opportunity for design students to gain real-world experience at a top creative agency. You will assist the design team on client projects and internal branding initiatives.",
			Location:    "New York, NY",
			Type:        JobTypeInternship,
			Salary:      "$20/hour",
			Requirements: []string{
				"Currently enrolled in design program", "Adobe Creative Suite",
				"Strong visual skills", "Eagerness to learn",
			},
			Category:   "Design",
			PostedDate: daysAgo(3),
			Deadline:   daysAhead(20),
			Status:     JobStatusActive,
		},
		{
			ID:          "job5",
			EmployerID:  "emp3",
			CompanyName: "GreenEnergy Inc",
			CompanyLogo: "🌱",
			Title:       "Environmental Engineer",
			Description: "Help us design and implement sustainable energy solutions. You will work on cutting-edge solar and wind energy projects across the country.",
			Location:    "Austin, TX",
			Type:        JobTypeFullTime,
			Salary:      "$95,000 - $125,000",
			Requirements: []string{
				"Environmental Engineering degree", "Renewable energy experience",
				"AutoCAD skills", "PE license preferred",
			},
			Category:   "Engineering",
			PostedDate: daysAgo(4),
			Deadline:   daysAhead(22),
			Status:     JobStatusActive,
		},
		{
			ID:          "job6",
			EmployerID:  "emp3",
			CompanyName: "GreenEnergy Inc",
			CompanyLogo: "🌱",
			Title:       "Marketing Coordinator",
			Description: "We are looking for a Marketing Coordinator to help spread the word about clean energy. You will manage social media, create content, and coordinate marketing campaigns.",
			Location:    "Austin, TX",
			Type:        JobTypePartTime,
			Salary:      "$45,000 - $55,000",
			Requirements: []string{
				"Marketing degree", "Social media expertise",
				"Content creation skills", "Analytics experience",
			},
			Category:   "Marketing",
			PostedDate: daysAgo(6),
			Deadline:   daysAhead(18),
			Status:     JobStatusActive,
		},
		{
			ID:          "job7",
			EmployerID:  "emp4",
			CompanyName: "FinancePlus",
			CompanyLogo: "💰",
			Title:       "Data Analyst",
			Description: "Analyze financial data and build reports that drive business decisions. You will work with large datasets and create visualizations for executive leadership.",
			Location:    "Chicago, IL",
			Type:        JobTypeFullTime,
			Salary:      "$85,000 - $110,000",
			Requirements: []string{
				"SQL proficiency", "Python/R experience",
				"Tableau or Power BI", "Finance knowledge",
			},
			Category:   "Data & Analytics",
			PostedDate: daysAgo(7),
			Deadline:   daysAhead(15),
			Status:     JobStatusActive,
		},
		{
			ID:          "job8",
			EmployerID:  "emp4",
			CompanyName: "FinancePlus",
			CompanyLogo: "💰",
			Title:       "Software Engineering Intern",
			Description: "Summer internship opportunity for CS students interested in fintech. Work alongside experienced engineers on production features.",
			Location:    "Chicago, IL",
			Type:        JobTypeInternship,
			Salary:      "$35/hour",
			Requirements: []string{
				"CS major (Junior/Senior)", "Java or Python",
				"Basic data structures", "Team player",
			},
			Category:   "Engineering",
			PostedDate: daysAgo(8),
			Deadline:   daysAhead(12),
			Status:     JobStatusActive,
		},
	}
}
