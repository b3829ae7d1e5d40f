package content

import "github.com/lucasaraujonrt/portfolio/internal/models"

// Seed returns the site's built-in content
func Seed() models.Content {
	return models.Content{
		Profile: models.Profile{
			Name:       "Lucas Araujo",
			Handle:     "@lucasaraujonrt",
			HandleLink: "https://www.linkedin.com/in/lucasaraujonrt/",
			Headline:   "Mid-Level Front end Developer",
			Subtitle:   "Software Engineering Student",
			Taglines: []string{
				"Always helping people when they need them.",
				"Enthusiast of mobile development. React Native Lover 💜",
				"First I will introduce myself to you. 🚀",
			},
			Email:  "lucasaraujo8186@email.com",
			Avatar: "/static/img/me.svg",
		},
		Projects: []models.Project{
			{
				Name:        "Nomad Explorer",
				Description: "Full development mobile implementation credit card",
				Link:        "https://www.nomadglobal.com/nomad-explorer",
				Video:       "./nomad-explorer.mp4",
				ID:          "project1",
			},
			{
				Name:        "Ink-er",
				Description: "Startup to help tattoo artists become better organized",
				Link:        "https://ink-er.me/landing",
				Video:       "./inker.mp4",
				ID:          "project2",
			},
		},
		Work: []models.WorkExperience{
			{
				Company: "Ink-er",
				Title:   "Founder",
				Start:   models.MustPeriod("2025"),
				End:     models.Present,
				Link:    "https://ink-er.me",
				ID:      "work2",
			},
			{
				Company: "Nomad Global",
				Title:   "Software Engineer",
				Start:   models.MustPeriod("2023"),
				End:     models.Present,
				Link:    "https://nomadglobal.com",
				ID:      "work1",
			},
			{
				Company: "MB Labs",
				Title:   "Software Engineer",
				Start:   models.MustPeriod("2022"),
				End:     models.MustPeriod("2024"),
				Link:    "https://mblabs.com.br/",
				ID:      "work3",
			},
			{
				Company: "CI&T",
				Title:   "Front-end Developer",
				Start:   models.MustPeriod("2022 - Jan"),
				End:     models.MustPeriod("2022 - Dec"),
				Link:    "https://ciandt.com/",
				ID:      "work4",
			},
			{
				Company: "MB Labs",
				Title:   "Software Engineer",
				Start:   models.MustPeriod("2020"),
				End:     models.MustPeriod("2022"),
				Link:    "https://mblabs.com.br/",
				ID:      "work5",
			},
		},
		Posts: []models.BlogPost{
			{
				Title:       "Trello API Integration: A Simple Solution for Support Tickets",
				Description: "Learn how to integrate Trello API to create an organized and visual support ticket system with automatic card creation.",
				Link:        "/blog/trello",
				ID:          "blog-5",
			},
			{
				Title:       "Sending Logs to Discord with Webhooks: A Cost-Effective Monitoring Solution",
				Description: "Learn how to implement a functional and cost-free logging system using Discord webhooks for real-time notifications.",
				Link:        "/blog/discord",
				ID:          "blog-4",
			},
			{
				Title:       "How i create a full cross platform to find Inkers",
				Description: "A full story about ink-er.me",
				Link:        "/blog/inker",
				ID:          "blog-3",
			},
			{
				Title:       "Create a Signature component in React Native",
				Description: "How to create a signature component",
				Link:        "/blog/signature-component",
				ID:          "blog-2",
			},
		},
		SocialLinks: []models.SocialLink{
			{Label: "Github", Link: "https://github.com/lucasaraujonrt"},
			{Label: "Twitter", Link: "https://twitter.com/lucasaraujonrt"},
			{Label: "LinkedIn", Link: "https://www.linkedin.com/in/lucasaraujonrt"},
			{Label: "Instagram", Link: "https://www.instagram.com/lucasaraujonrt"},
			{Label: "npm", Link: "https://www.npmjs.com/~lucasaraujonrt"},
			{Label: "Email", Link: "mailto:lucasaraujo8186@email.com"},
		},
	}
}
