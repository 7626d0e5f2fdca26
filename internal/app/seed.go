package app

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/config"
	"github.com/devfolio/portfolio-api/internal/db"
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/store"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Seed opens the database and inserts the demo content. Tables that
// already hold rows are left untouched so reruns are safe.
func Seed(ctx context.Context, cfg config.Config) error {
	conn, err := db.Open(cfg.Database.ResolveDSN())
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	return seedStores(ctx, store.New(conn))
}

func seedStores(ctx context.Context, stores *store.Stores) error {
	projectCount, errCount := stores.Projects.Count(ctx)
	if errCount != nil {
		return errCount
	}
	if projectCount == 0 {
		for _, project := range seedProjects() {
			row := project
			if errCreate := stores.Projects.Create(ctx, &row); errCreate != nil {
				return errCreate
			}
		}
		log.Infof("seeded %d projects", len(seedProjects()))
	}

	techCount, errCount := stores.TechStack.Count(ctx)
	if errCount != nil {
		return errCount
	}
	if techCount == 0 {
		for _, tech := range seedTechStack() {
			row := tech
			if errCreate := stores.TechStack.Create(ctx, &row); errCreate != nil {
				return errCreate
			}
		}
		log.Infof("seeded %d tech stack entries", len(seedTechStack()))
	}

	return nil
}

func seedProjects() []models.Project {
	return []models.Project{
		{
			Title:       "NextCommerce",
			Description: "A full-featured e-commerce platform built with Next.js, featuring real-time inventory, payment integration, and advanced analytics dashboard.",
			Image:       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "web-app",
			Tags:        datatypes.NewJSONSlice([]string{"Next.js", "React", "TypeScript", "Tailwind", "MongoDB", "Stripe"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"Next.js", "Stripe"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   1,
		},
		{
			Title:       "TaskFlow Pro",
			Description: "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
			Image:       "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "web-app",
			Tags:        datatypes.NewJSONSlice([]string{"Next.js", "Socket.io", "DnD Kit", "PostgreSQL"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"React", "Firebase"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   2,
		},
		{
			Title:       "CloudAPI Gateway",
			Description: "A scalable REST API gateway with authentication, rate limiting, caching, and comprehensive API documentation.",
			Image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "api",
			Tags:        datatypes.NewJSONSlice([]string{"Express.js", "JWT", "Swagger", "Docker"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"Node.js", "Redis"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   3,
		},
		{
			Title:       "DevToolbox",
			Description: "A collection of development utilities including code generators, API testing tools, and deployment automation scripts.",
			Image:       "https://images.unsplash.com/photo-1581447109200-bf2769116351?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "tools",
			Tags:        datatypes.NewJSONSlice([]string{"Node.js", "Commander", "Inquirer", "Chalk"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"CLI", "Utility"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   4,
		},
		{
			Title:       "DataViz Pro",
			Description: "A comprehensive analytics dashboard with interactive charts, real-time data streaming, and custom visualization components.",
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "web-app",
			Tags:        datatypes.NewJSONSlice([]string{"React", "Chart.js", "WebSocket", "GraphQL"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"D3.js", "Charts"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   5,
		},
		{
			Title:       "MicroStack",
			Description: "A scalable microservices architecture with containerized services, API gateway, and comprehensive monitoring solution.",
			Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Category:    "api",
			Tags:        datatypes.NewJSONSlice([]string{"Kubernetes", "gRPC", "Prometheus", "Istio"}),
			PrimaryTags: datatypes.NewJSONSlice([]string{"Docker", "K8s"}),
			DemoURL:     "#",
			GithubURL:   "#",
			IsActive:    true,
			SortOrder:   6,
		},
	}
}

func seedTechStack() []models.TechStack {
	return []models.TechStack{
		{Name: "Next.js", Icon: "Next", Bg: "bg-black", Description: "React Framework", Category: "frontend", IsActive: true, SortOrder: 1},
		{Name: "React", Icon: "fab fa-react", Bg: "bg-blue-500", Description: "JavaScript Library", Category: "frontend", IsActive: true, SortOrder: 2},
		{Name: "Tailwind CSS", Icon: "TW", Bg: "bg-blue-400", Description: "Utility-First CSS", Category: "frontend", IsActive: true, SortOrder: 3},
		{Name: "TypeScript", Icon: "TS", Bg: "bg-blue-600", Description: "Typed JavaScript", Category: "frontend", IsActive: true, SortOrder: 4},
		{Name: "Node.js", Icon: "fab fa-node-js", Bg: "bg-green-600", Description: "JavaScript Runtime", Category: "backend", IsActive: true, SortOrder: 1},
		{Name: "Express.js", Icon: "Ex", Bg: "bg-gray-700", Description: "Web Framework", Category: "backend", IsActive: true, SortOrder: 2},
		{Name: "GraphQL", Icon: "GQL", Bg: "bg-pink-500", Description: "Query Language", Category: "backend", IsActive: true, SortOrder: 3},
		{Name: "AWS", Icon: "fab fa-aws", Bg: "bg-orange-500", Description: "Cloud Platform", Category: "backend", IsActive: true, SortOrder: 4},
		{Name: "MongoDB", Icon: "Mo", Bg: "bg-green-500", Description: "NoSQL Database", Category: "database", IsActive: true, SortOrder: 1},
		{Name: "PostgreSQL", Icon: "PG", Bg: "bg-blue-700", Description: "SQL Database", Category: "database", IsActive: true, SortOrder: 2},
		{Name: "Redis", Icon: "Re", Bg: "bg-red-600", Description: "In-Memory Store", Category: "database", IsActive: true, SortOrder: 3},
		{Name: "Firebase", Icon: "FB", Bg: "bg-yellow-500", Description: "BaaS Platform", Category: "database", IsActive: true, SortOrder: 4},
		{Name: "Docker", Icon: "fab fa-docker", Bg: "bg-blue-600", Description: "Containerization", Category: "tools", IsActive: true, SortOrder: 1},
		{Name: "Git", Icon: "fab fa-git-alt", Bg: "bg-orange-600", Description: "Version Control", Category: "tools", IsActive: true, SortOrder: 2},
		{Name: "Kubernetes", Icon: "K8s", Bg: "bg-purple-600", Description: "Orchestration", Category: "tools", IsActive: true, SortOrder: 3},
		{Name: "Vercel", Icon: "Ve", Bg: "bg-black", Description: "Deployment", Category: "tools", IsActive: true, SortOrder: 4},
	}
}
