package database

type Database struct {
	storage     Storage
	sessionRepo *SessionRepo
	themeRepo   *ThemeRepo
}

// New initializes a new Database struct with each repository sharing one Storage
func New(storage Storage) Database {
	return Database{
		storage:     storage,
		sessionRepo: NewSessionRepo(storage),
		themeRepo:   NewThemeRepo(storage),
	}
}

// Accessor methods for each repository

func (d Database) Storage() Storage {
	return d.storage
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) ThemeRepo() *ThemeRepo {
	return d.themeRepo
}
