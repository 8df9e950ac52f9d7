package checker

// CheckName - функция для проверки корректности имени пользователя.
func CheckName(name string) bool {
	// проверяю, что имя не является пустой строкой
	return name != ""
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	// проверяю, что пароль не является пустой строкой
	return password != ""
}

// CheckEmail - функция для проверки корректности email.
func CheckEmail(email string) bool {
	// проверяю, что email не является пустой строкой
	return email != ""
}
