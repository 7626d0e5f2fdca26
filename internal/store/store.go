package store

import "gorm.io/gorm"

// Stores bundles every resource store over a single connection pool. The
// pool is passed in explicitly so tests can hand each store its own
// database.
type Stores struct {
	Contacts  *ContactStore
	Users     *UserStore
	Projects  *ProjectStore
	TechStack *TechStackStore
	Blog      *BlogStore
	Admins    *AdminStore
	Sessions  *SessionStore
}

// New constructs all stores on top of one GORM connection.
func New(conn *gorm.DB) *Stores {
	return &Stores{
		Contacts:  NewContactStore(conn),
		Users:     NewUserStore(conn),
		Projects:  NewProjectStore(conn),
		TechStack: NewTechStackStore(conn),
		Blog:      NewBlogStore(conn),
		Admins:    NewAdminStore(conn),
		Sessions:  NewSessionStore(conn),
	}
}
