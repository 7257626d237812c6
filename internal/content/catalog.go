// Package content carries the built-in quiz catalog for the ten required
// learning modules. Both locales live in one structure per question, so the
// option count and correct index cannot drift between languages.
package content

import "cybershield-academy/internal/domain"

// RequiredModules is the ordered list of modules a user must pass to earn the
// completion diploma.
func RequiredModules() []string {
	return []string{
		"password-security",
		"phishing-protection",
		"2fa-setup",
		"network-security",
		"malware-protection",
		"social-engineering",
		"data-privacy",
		"mobile-security",
		"cloud-security",
		"email-security",
	}
}

// Catalog returns the full built-in module set, keyed by module id.
func Catalog() map[string]domain.Module {
	modules := make(map[string]domain.Module, len(all))
	for _, m := range all {
		modules[m.ID] = m
	}
	return modules
}

func q(id string, correct int, bgPrompt string, bgOpts []string, enPrompt string, enOpts []string) domain.Question {
	return domain.Question{
		ID:           id,
		CorrectIndex: correct,
		OptionCount:  len(bgOpts),
		Text: map[domain.Locale]domain.QuestionText{
			domain.LocaleBG: {Prompt: bgPrompt, Options: bgOpts},
			domain.LocaleEN: {Prompt: enPrompt, Options: enOpts},
		},
	}
}

var all = []domain.Module{
	{
		ID: "password-security",
		Questions: []domain.Question{
			q("password-security-q1", 2,
				"Каква е минималната препоръчителна дължина на силна парола?",
				[]string{"6 символа", "8 символа", "12 символа", "4 символа"},
				"What is the minimum recommended length for a strong password?",
				[]string{"6 characters", "8 characters", "12 characters", "4 characters"}),
			q("password-security-q2", 1,
				"Кое от следните е пример за СЛАБА парола?",
				[]string{"K9#mPx$2nL@vQ4", "password123", "Tr0ub4dor&3Horse", "j8$Kp2!mNq#5"},
				"Which of the following is a WEAK password?",
				[]string{"K9#mPx$2nL@vQ4", "password123", "Tr0ub4dor&3Horse", "j8$Kp2!mNq#5"}),
			q("password-security-q3", 2,
				"Какъв процент от пробивите са заради слаби пароли?",
				[]string{"50%", "65%", "81%", "35%"},
				"What percentage of breaches are due to weak passwords?",
				[]string{"50%", "65%", "81%", "35%"}),
			q("password-security-q4", 2,
				"Кой от следните мениджъри на пароли е безплатен и open-source?",
				[]string{"1Password", "Dashlane", "Bitwarden", "LastPass"},
				"Which password manager is free and open-source?",
				[]string{"1Password", "Dashlane", "Bitwarden", "LastPass"}),
			q("password-security-q5", 1,
				"На колко време трябва да сменяте паролите си?",
				[]string{"Всеки месец", "Всеки 3-6 месеца", "Веднъж годишно", "Никога"},
				"How often should you change your passwords?",
				[]string{"Every month", "Every 3-6 months", "Once a year", "Never"}),
		},
	},
	{
		ID: "phishing-protection",
		Questions: []domain.Question{
			q("phishing-protection-q1", 1,
				"Какво е фишинг?",
				[]string{"Вид антивирус", "Кибератака за кражба на данни чрез измама", "Програма за криптиране", "Мрежов протокол"},
				"What is phishing?",
				[]string{"A type of antivirus", "A cyber attack to steal data through deception", "An encryption program", "A network protocol"}),
			q("phishing-protection-q2", 2,
				"Кой от тези имейл адреси е подозрителен?",
				[]string{"support@amazon.com", "no-reply@google.com", "security@amaz0n-account.com", "help@microsoft.com"},
				"Which email address is suspicious?",
				[]string{"support@amazon.com", "no-reply@google.com", "security@amaz0n-account.com", "help@microsoft.com"}),
			q("phishing-protection-q3", 1,
				"Какво е \"spear phishing\"?",
				[]string{"Масова имейл атака", "Насочена атака към конкретен човек", "Телефонна измама", "SMS фишинг"},
				"What is \"spear phishing\"?",
				[]string{"Mass email attack", "Targeted attack on a specific person", "Phone scam", "SMS phishing"}),
			q("phishing-protection-q4", 2,
				"Какво трябва да направите ако получите фишинг имейл?",
				[]string{"Кликнете на линка", "Отговорете на имейла", "Докладвайте като спам и изтрийте", "Препратете го на приятели"},
				"What should you do if you receive a phishing email?",
				[]string{"Click the link", "Reply to the email", "Report as spam and delete", "Forward to friends"}),
			q("phishing-protection-q5", 1,
				"Какво е \"vishing\"?",
				[]string{"Видео фишинг", "Телефонна измама", "Вирус", "VPN атака"},
				"What is \"vishing\"?",
				[]string{"Video phishing", "Phone scam", "A virus", "VPN attack"}),
		},
	},
	{
		ID: "2fa-setup",
		Questions: []domain.Question{
			q("2fa-setup-q1", 1,
				"Какво означава 2FA?",
				[]string{"Два файъруола", "Двуфакторна автентикация", "Двойно криптиране", "Два антивируса"},
				"What does 2FA stand for?",
				[]string{"Two Firewalls", "Two-Factor Authentication", "Double Encryption", "Two Antiviruses"}),
			q("2fa-setup-q2", 2,
				"Кой метод за 2FA е НАЙ-СИГУРЕН?",
				[]string{"SMS кодове", "Имейл кодове", "Хардуерни ключове", "Парола"},
				"Which 2FA method is MOST SECURE?",
				[]string{"SMS codes", "Email codes", "Hardware keys", "Password"}),
			q("2fa-setup-q3", 1,
				"Защо SMS кодовете са по-малко сигурни?",
				[]string{"Твърде бавни са", "Уязвими към SIM swapping", "Много скъпи", "Не работят навсякъде"},
				"Why are SMS codes less secure?",
				[]string{"Too slow", "Vulnerable to SIM swapping", "Very expensive", "Don't work everywhere"}),
			q("2fa-setup-q4", 1,
				"Какво представляват резервните кодове?",
				[]string{"Пароли за WiFi", "Еднократни кодове за достъп без телефон", "Серийни номера", "Кодове за отстъпка"},
				"What are backup codes?",
				[]string{"WiFi passwords", "One-time access codes without phone", "Serial numbers", "Discount codes"}),
			q("2fa-setup-q5", 2,
				"Къде НЕ трябва да съхранявате резервни кодове?",
				[]string{"В сейф", "В криптиран файл", "Снимка на телефона", "Парола мениджър"},
				"Where should you NOT store backup codes?",
				[]string{"In a safe", "In an encrypted file", "Photo on your phone", "Password manager"}),
		},
	},
	{
		ID: "network-security",
		Questions: []domain.Question{
			q("network-security-q1", 2,
				"Кое криптиране за WiFi е най-сигурно?",
				[]string{"WEP", "WPA-TKIP", "WPA3", "Без криптиране"},
				"Which WiFi encryption is most secure?",
				[]string{"WEP", "WPA-TKIP", "WPA3", "No encryption"}),
			q("network-security-q2", 1,
				"Какво прави VPN?",
				[]string{"Ускорява интернета", "Криптира трафика и скрива IP", "Блокира реклами", "Инсталира антивирус"},
				"What does a VPN do?",
				[]string{"Speeds up internet", "Encrypts traffic and hides IP", "Blocks ads", "Installs antivirus"}),
			q("network-security-q3", 0,
				"Какво е Man-in-the-Middle атака?",
				[]string{"Хакер се поставя между вас и сървъра", "Вирус в компютъра", "Спам имейл", "Физическа кражба"},
				"What is a Man-in-the-Middle attack?",
				[]string{"Hacker positions between you and server", "Computer virus", "Spam email", "Physical theft"}),
			q("network-security-q4", 1,
				"Кога е ЗАДЪЛЖИТЕЛНО да използвате VPN?",
				[]string{"У дома", "В публичен WiFi", "Само на работа", "Никога"},
				"When is VPN MANDATORY?",
				[]string{"At home", "On public WiFi", "Only at work", "Never"}),
			q("network-security-q5", 1,
				"Какво е SPI в контекста на firewall?",
				[]string{"Simple Password Interface", "Stateful Packet Inspection", "Secure Protocol Integration", "System Protection Index"},
				"What is SPI in the context of firewall?",
				[]string{"Simple Password Interface", "Stateful Packet Inspection", "Secure Protocol Integration", "System Protection Index"}),
		},
	},
	{
		ID: "malware-protection",
		Questions: []domain.Question{
			q("malware-protection-q1", 1,
				"Какво е рансъмуер?",
				[]string{"Антивирус", "Малуер който криптира файлове и иска откуп", "Защитна стена", "Тип мрежа"},
				"What is ransomware?",
				[]string{"Antivirus", "Malware that encrypts files and demands ransom", "Firewall", "Network type"}),
			q("malware-protection-q2", 1,
				"Какво е правилото 3-2-1 за бекъпи?",
				[]string{"3 пароли, 2 имейла, 1 телефон", "3 копия, 2 носителя, 1 офлайн", "3 антивируса, 2 firewall, 1 VPN", "3 дни, 2 часа, 1 минута"},
				"What is the 3-2-1 backup rule?",
				[]string{"3 passwords, 2 emails, 1 phone", "3 copies, 2 media, 1 offline", "3 antiviruses, 2 firewalls, 1 VPN", "3 days, 2 hours, 1 minute"}),
			q("malware-protection-q3", 1,
				"Кой признак НЕ е знак за заразяване?",
				[]string{"Бавен компютър", "Нова актуализация от Windows Update", "Браузърът се пренасочва", "Антивирусът е деактивиран"},
				"Which sign is NOT an indication of infection?",
				[]string{"Slow computer", "New Windows Update", "Browser redirects", "Antivirus disabled"}),
			q("malware-protection-q4", 1,
				"Какво трябва да направите ПЪРВО при заразяване?",
				[]string{"Рестартирайте компютъра", "Изключете интернет връзката", "Инсталирайте нов браузър", "Сменете паролата"},
				"What should you do FIRST when infected?",
				[]string{"Restart computer", "Disconnect from internet", "Install new browser", "Change password"}),
			q("malware-protection-q5", 1,
				"Какво е ботнет?",
				[]string{"Мрежа от роботи", "Мрежа от заразени компютри \"зомбита\"", "Тип VPN", "Антивирусна програма"},
				"What is a botnet?",
				[]string{"Robot network", "Network of infected \"zombie\" computers", "Type of VPN", "Antivirus program"}),
		},
	},
	{
		ID: "social-engineering",
		Questions: []domain.Question{
			q("social-engineering-q1", 1,
				"Какво е социално инженерство?",
				[]string{"Вид програмиране", "Манипулация на хора за разкриване на информация", "Социална мрежа", "Инженерна специалност"},
				"What is social engineering?",
				[]string{"A type of programming", "Manipulating people to reveal information", "A social network", "An engineering specialty"}),
			q("social-engineering-q2", 1,
				"Какво е \"pretexting\"?",
				[]string{"Изпращане на вирус", "Измислена история за манипулация", "Хакване на WiFi", "Тип криптиране"},
				"What is \"pretexting\"?",
				[]string{"Sending a virus", "A made-up story for manipulation", "WiFi hacking", "A type of encryption"}),
			q("social-engineering-q3", 1,
				"Какво е \"tailgating\"?",
				[]string{"Следване на кола", "Влизане в сграда зад служител", "Тип фишинг", "Мрежова атака"},
				"What is \"tailgating\"?",
				[]string{"Following a car", "Entering a building behind an employee", "A type of phishing", "A network attack"}),
			q("social-engineering-q4", 1,
				"Как се защитавате от социално инженерство?",
				[]string{"Инсталирайте антивирус", "Винаги проверявайте самоличността на обаждащия се", "Сменете паролата", "Използвайте VPN"},
				"How do you protect against social engineering?",
				[]string{"Install antivirus", "Always verify the caller's identity", "Change password", "Use VPN"}),
			q("social-engineering-q5", 1,
				"Кое от следните е пример за \"baiting\"?",
				[]string{"Фишинг имейл", "USB с примамливо име на паркинг", "Телефонно обаждане", "Хакване на WiFi"},
				"Which is an example of \"baiting\"?",
				[]string{"Phishing email", "USB with enticing name in parking lot", "Phone call", "WiFi hacking"}),
		},
	},
	{
		ID: "data-privacy",
		Questions: []domain.Question{
			q("data-privacy-q1", 1,
				"Какво ви дава право GDPR?",
				[]string{"Безплатен интернет", "Контрол над личните ви данни", "Анонимност навсякъде", "Безплатен VPN"},
				"What does GDPR give you the right to?",
				[]string{"Free internet", "Control over your personal data", "Anonymity everywhere", "Free VPN"}),
			q("data-privacy-q2", 2,
				"Кой браузър е фокусиран върху поверителност?",
				[]string{"Chrome", "Edge", "Brave", "Safari"},
				"Which browser is privacy-focused?",
				[]string{"Chrome", "Edge", "Brave", "Safari"}),
			q("data-privacy-q3", 1,
				"Какво е DSAR?",
				[]string{"Вид вирус", "Заявка за достъп до лични данни", "Тип криптиране", "Мрежов протокол"},
				"What is a DSAR?",
				[]string{"A type of virus", "Data Subject Access Request", "A type of encryption", "A network protocol"}),
			q("data-privacy-q4", 2,
				"За колко дни компанията трябва да отговори на DSAR?",
				[]string{"7 дни", "14 дни", "30 дни", "90 дни"},
				"How many days must a company respond to a DSAR?",
				[]string{"7 days", "14 days", "30 days", "90 days"}),
			q("data-privacy-q5", 1,
				"Какво е \"правото да бъдете забравени\"?",
				[]string{"Да изтриете паролата", "Да поискате изтриване на данните ви", "Да скриете профила", "Да смените имейла"},
				"What is the \"right to be forgotten\"?",
				[]string{"Delete your password", "Request deletion of your data", "Hide your profile", "Change your email"}),
		},
	},
	{
		ID: "mobile-security",
		Questions: []domain.Question{
			q("mobile-security-q1", 1,
				"Какъв PIN код трябва да използвате?",
				[]string{"4-цифрен", "6-цифрен", "Без PIN", "3-цифрен"},
				"What PIN code should you use?",
				[]string{"4-digit", "6-digit", "No PIN", "3-digit"}),
			q("mobile-security-q2", 1,
				"Откъде трябва да инсталирате приложения?",
				[]string{"Всеки сайт", "Само официални магазини", "Торент", "Имейл прикачени"},
				"Where should you install apps from?",
				[]string{"Any website", "Only official stores", "Torrent", "Email attachments"}),
			q("mobile-security-q3", 1,
				"Какво е \"juice jacking\"?",
				[]string{"Кражба на сок", "Атака чрез публични USB станции", "Хакване на Wi-Fi", "Тип фишинг"},
				"What is \"juice jacking\"?",
				[]string{"Juice theft", "Attack via public USB stations", "Wi-Fi hacking", "A type of phishing"}),
			q("mobile-security-q4", 1,
				"Как да намерите IMEI номера?",
				[]string{"В настройките", "Наберете *#06#", "В App Store", "В браузъра"},
				"How to find your IMEI number?",
				[]string{"In settings", "Dial *#06#", "In App Store", "In browser"}),
			q("mobile-security-q5", 1,
				"Какво е SIM swapping?",
				[]string{"Смяна на SIM карта", "Хакер прехвърля номера ви", "Нова SIM карта", "Двойна SIM"},
				"What is SIM swapping?",
				[]string{"Changing SIM card", "Hacker transfers your number", "New SIM card", "Dual SIM"}),
		},
	},
	{
		ID: "cloud-security",
		Questions: []domain.Question{
			q("cloud-security-q1", 2,
				"Какъв процент от облачните пробиви ще са по вина на потребителя до 2025?",
				[]string{"50%", "75%", "99%", "85%"},
				"What percentage of cloud breaches will be the user's fault by 2025?",
				[]string{"50%", "75%", "99%", "85%"}),
			q("cloud-security-q2", 1,
				"Какво означава \"споделена отговорност\" в облака?",
				[]string{"Всички имат достъп", "Облакът и потребителят споделят сигурността", "Безплатна услуга", "Няма защита"},
				"What does \"shared responsibility\" mean in the cloud?",
				[]string{"Everyone has access", "Cloud and user share security", "Free service", "No protection"}),
			q("cloud-security-q3", 1,
				"Какво е Shadow IT?",
				[]string{"Тъмна тема", "Неодобрени облачни услуги от служители", "Вид вирус", "Тип криптиране"},
				"What is Shadow IT?",
				[]string{"Dark theme", "Unapproved cloud services by employees", "A type of virus", "A type of encryption"}),
			q("cloud-security-q4", 1,
				"Какво е правилото 3-2-1 за бекъпи?",
				[]string{"3 пароли, 2 имейла, 1 VPN", "3 копия, 2 носителя, 1 офлайн", "3 облака, 2 сървъра, 1 компютър", "3 дни, 2 часа, 1 минута"},
				"What is the 3-2-1 backup rule?",
				[]string{"3 passwords, 2 emails, 1 VPN", "3 copies, 2 media, 1 offline", "3 clouds, 2 servers, 1 computer", "3 days, 2 hours, 1 minute"}),
			q("cloud-security-q5", 1,
				"Какъв принцип трябва да следвате за достъп?",
				[]string{"Максимален достъп", "Минимален достъп", "Споделен достъп", "Публичен достъп"},
				"What access principle should you follow?",
				[]string{"Maximum access", "Least privilege", "Shared access", "Public access"}),
		},
	},
	{
		ID: "email-security",
		Questions: []domain.Question{
			q("email-security-q1", 2,
				"Какъв процент от атаките започват с имейл?",
				[]string{"50%", "71%", "91%", "30%"},
				"What percentage of attacks start with email?",
				[]string{"50%", "71%", "91%", "30%"}),
			q("email-security-q2", 1,
				"Какво е BEC?",
				[]string{"Вид антивирус", "Business Email Compromise", "Браузър разширение", "Тип криптиране"},
				"What is BEC?",
				[]string{"A type of antivirus", "Business Email Compromise", "Browser extension", "A type of encryption"}),
			q("email-security-q3", 3,
				"Какъв минимален брой символи трябва да има паролата за имейл?",
				[]string{"8", "10", "12", "16"},
				"Minimum characters for an email password?",
				[]string{"8", "10", "12", "16"}),
			q("email-security-q4", 1,
				"Какво е email spoofing?",
				[]string{"Криптиран имейл", "Фалшифициран адрес на подателя", "Спам филтър", "Имейл архив"},
				"What is email spoofing?",
				[]string{"Encrypted email", "Forged sender address", "Spam filter", "Email archive"}),
			q("email-security-q5", 1,
				"Кой сайт може да се ползва за проверка на подозрителни файлове?",
				[]string{"Google", "VirusTotal", "Facebook", "Wikipedia"},
				"Which site can check suspicious files?",
				[]string{"Google", "VirusTotal", "Facebook", "Wikipedia"}),
		},
	},
}
