package i18n

import "cybershield-academy/internal/domain"

var translations = map[domain.Locale]map[string]string{
	domain.LocaleBG: {
		"cert.kicker":    "СЕРТИФИКАТ",
		"cert.title":     "ДИПЛОМА ЗА КИБЕРСИГУРНОСТ",
		"cert.awardedTo": "Присъдена на",
		"cert.desc1":     "За успешно завършване на всички модули по киберсигурност",
		"cert.desc2":     "и преминаване на %d теста с успех",
		"cert.date":      "Дата",
		"cert.id":        "ID",
		"cert.brand":     "CyberShield Academy",
		"cert.filename":  "Диплома-Киберсигурност.png",

		"module.password-security":  "Пароли",
		"module.phishing-protection": "Фишинг",
		"module.2fa-setup":          "2FA",
		"module.network-security":   "Мрежи",
		"module.malware-protection": "Малуер",
		"module.social-engineering": "Соц. инж.",
		"module.data-privacy":       "Данни",
		"module.mobile-security":    "Мобилна",
		"module.cloud-security":     "Облак",
		"module.email-security":     "Имейл",

		"quiz.passedTitle":  "Тест преминат!",
		"quiz.failedTitle":  "Тестът не е преминат",
		"quiz.bestScore":    "Най-добър резултат",
		"diploma.needName":  "Въведете пълното си име",
		"diploma.locked":    "Завършете всички модули, за да получите дипломата си",
	},
	domain.LocaleEN: {
		"cert.kicker":    "CERTIFICATE",
		"cert.title":     "CYBERSECURITY DIPLOMA",
		"cert.awardedTo": "Awarded to",
		"cert.desc1":     "For successfully completing all cybersecurity modules",
		"cert.desc2":     "and passing all %d quizzes successfully",
		"cert.date":      "Date",
		"cert.id":        "ID",
		"cert.brand":     "CyberShield Academy",
		"cert.filename":  "Cybersecurity-Diploma.png",

		"module.password-security":  "Passwords",
		"module.phishing-protection": "Phishing",
		"module.2fa-setup":          "2FA",
		"module.network-security":   "Network",
		"module.malware-protection": "Malware",
		"module.social-engineering": "Social Eng.",
		"module.data-privacy":       "Privacy",
		"module.mobile-security":    "Mobile",
		"module.cloud-security":     "Cloud",
		"module.email-security":     "Email",

		"quiz.passedTitle":  "Quiz Passed!",
		"quiz.failedTitle":  "Quiz Not Passed",
		"quiz.bestScore":    "Best score",
		"diploma.needName":  "Enter your full name",
		"diploma.locked":    "Complete all modules to receive your diploma",
	},
}
