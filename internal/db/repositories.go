package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Sessions    *SessionRepository
	Diary       *DiaryRepository
	MedicalInfo *MedicalInfoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Sessions:    NewSessionRepository(database),
		Diary:       NewDiaryRepository(database),
		MedicalInfo: NewMedicalInfoRepository(database),
	}
}
