package content

import "folio.dev/internal/models"

// Default is the built-in author content, written out by `folio generate`
func Default() *models.Content {
	return &models.Content{
		Site: models.Site{
			Profile: models.Profile{
				Name:    "Yogesh Chavan",
				Tagline: "Full Stack Developer | Web Developer",
				Intro:   "I build modern, responsive, and high-performing web applications. Let's create something amazing together.",
				Badges:  []string{"React", "Node.js", "MongoDB", "JavaScript"},
				Image:   "/images/edu.jpg",
				Logo:    "yogesh",
			},
			Nav: []models.NavLink{
				{Name: "Home", Href: "#home"},
				{Name: "Skills", Href: "#skills"},
				{Name: "Projects", Href: "#projects"},
				{Name: "Experience", Href: "#experience"},
				{Name: "Contact", Href: "#contact"},
			},
			Social: []models.SocialLink{
				{Label: "GitHub", Href: "https://github.com/Yogesh100-design/", Icon: "github"},
				{Label: "LinkedIn", Href: "https://www.linkedin.com/in/yogesh-chavan-494196316/", Icon: "linkedin"},
				{Label: "Email", Href: "mailto:yogeshchavan1209@gmail.com", Icon: "mail"},
			},
			Copyright: "© 2024 Yogesh Chavan. All rights reserved.",
		},
		Skills: []models.SkillCategory{
			{
				Category: "Frontend Skills",
				Skills: []string{
					"HTML5", "CSS3", "JavaScript (ES6+)", "React.js",
					"React Hooks (useState, useEffect, useContext)",
					"Tailwind CSS", "Bootstrap", "Responsive Design", "Vite",
				},
			},
			{
				Category: "Backend Skills",
				Skills: []string{
					"Node.js", "Express.js", "MongoDB (Mongoose)", "MySQL (using PHP)",
					"REST APIs", "Authentication (JWT)", "Middleware Handling", "CRUD Operations",
				},
			},
			{
				Category: "Full-Stack / Tools",
				Skills: []string{
					"MERN Stack", "Git & GitHub", "npm / yarn", "Postman",
					"XAMPP", "API Integration",
				},
			},
		},
		Projects: []models.Project{
			{
				ID:          1,
				Title:       "EduMedia",
				Description: "A digital learning platform featuring study materials, interactive UI, subjects, videos, and notes.",
				TechStack:   []string{"React", "Node.js", "Express", "MongoDB"},
				GitHub:      "https://github.com/Yogesh100-design/EduMedia-Hub",
				Live:        "https://studymedia-online.netlify.app/",
				Image:       "/images/Edumedia.jpg",
				Status:      models.StatusFeatured,
			},
			{
				ID:          2,
				Title:       "Money Manager",
				Description: "Tracks expenses, categories, and monthly spending. Fully connected with MySQL using PHP.",
				TechStack:   []string{"HTML", "CSS", "PHP", "MySQL"},
				GitHub:      "https://github.com/Yogesh100-design/MoneyMate",
				Live:        "https://moneymate-1-cacl.onrender.com/",
				Image:       "/images/money.jpeg",
			},
			{
				ID:          3,
				Title:       "TextUtils",
				Description: "A text manipulation tool with features like uppercase, lowercase, remove spaces, and more.",
				TechStack:   []string{"React", "JavaScript", "Bootstrap"},
				GitHub:      "https://github.com/Yogesh100-design/textutils",
				Live:        "https://yogesh100-design.github.io/textutils/",
				Image:       "/images/textutils.jpeg",
			},
			{
				ID:          4,
				Title:       "SVIT College Website Clone",
				Description: "A modern, responsive clone of SVIT college website.",
				TechStack:   []string{"HTML", "CSS", "JavaScript"},
				GitHub:      "https://github.com/PRATIK-RAKTATE/SVIT-college-website",
				Live:        "https://svitchincholi.netlify.app/",
				Image:       "/images/college.jpeg",
			},
			{
				ID:          5,
				Title:       "News App (React)",
				Description: "Shows live news fetched using API with category filters and modern UI.",
				TechStack:   []string{"React", "API", "CSS"},
				GitHub:      "https://github.com/Yogesh100-design/Quicknews",
				Image:       "/images/news.webp",
			},
			{
				ID:          6,
				Title:       "NoteNest (MERN)",
				Description: "A full-stack notes saving app with signup/login and MongoDB backend.",
				TechStack:   []string{"React", "Node.js", "Express", "MongoDB"},
				GitHub:      "https://github.com/Yogesh100-design/Notenest",
				Image:       "/images/notes.jpeg",
			},
		},
	}
}
