package ds

// Черновик заявки — результат работы слоя валидации. Всё, что лежит ниже
// валидации, работает только с этими типами, а не с сырым payload формы.

type ServiceDraft struct {
	TrainingTypeID    uint
	TrainingProgramID uint
	TrainingRank      string // пустая строка — разряд не указан
	PeopleCount       int
}

type ApplicationDraft struct {
	UserID      int64
	CompanyName string
	PhoneNumber string
	Email       string
	Services    []ServiceDraft
}
