package i18n

var tables = map[Locale]map[string]string{
	Uzbek: {
		"welcome":                "Assalomu alaykum, {name}! 👋\nRezyume botiga xush kelibsiz.",
		"choose_language":        "Tilni tanlang:",
		"language_set":           "Til saqlandi: O'zbekcha",
		"main_menu":              "Quyidagi bo'limlardan birini tanlang:",
		"btn_resume_uz":          "📄 Rezyume (O'zbekcha)",
		"btn_resume_eng":         "📄 Resume (English)",
		"btn_resume_rus":         "📄 Резюме (Русский)",
		"btn_contact":            "📞 Bog'lanish",
		"btn_change_language":    "🌐 Tilni o'zgartirish",
		"btn_back":               "⬅️ Orqaga",
		"btn_telegram":           "Telegram",
		"btn_linkedin":           "LinkedIn",
		"contact_text":           "Men bilan bog'lanish uchun quyidagi havolalardan foydalaning:",
		"resume_sent":            "✅ Rezyume yuborildi. Yana nimadir kerak bo'lsa, /start buyrug'ini yuboring.",
		"resume_missing":         "Kechirasiz, bu rezyume hozircha mavjud emas. Keyinroq urinib ko'ring.",
		"generic_error":          "Xatolik yuz berdi. Iltimos, keyinroq qayta urinib ko'ring.",
		"no_access":              "Bu amal faqat administrator uchun.",
		"cancelled":              "Amal bekor qilindi.",
		"nothing_to_cancel":      "Bekor qilinadigan amal yo'q.",
		"admin_choose_language":  "Admin panel tilini tanlang:",
		"admin_menu":             "Admin panel. Amalni tanlang:",
		"btn_admin_update_uz":    "🔄 Rezyume yangilash (UZ)",
		"btn_admin_update_eng":   "🔄 Rezyume yangilash (EN)",
		"btn_admin_update_rus":   "🔄 Rezyume yangilash (RU)",
		"btn_admin_broadcast":    "📣 Xabar yuborish",
		"btn_admin_statistics":   "📊 Statistika",
		"btn_admin_users_list":   "👥 Foydalanuvchilar",
		"btn_admin_file_info":    "📁 Fayllar haqida",
		"admin_prompt_upload":    "Yangi rezyume faylini ({variant}) PDF ko'rinishida yuboring.\nBekor qilish uchun /cancel yozing.",
		"admin_expect_document":  "Fayl kutilmoqda. PDF hujjat yuboring yoki /cancel yozing.",
		"admin_upload_done":      "✅ Rezyume ({variant}) yangilandi.\nHajmi: {size}\nVaqt: {time}",
		"admin_upload_failed":    "Faylni saqlashda xatolik yuz berdi. Qayta urinib ko'ring.",
		"admin_prompt_broadcast": "Barcha foydalanuvchilarga yuboriladigan xabar matnini kiriting.\nBekor qilish uchun /cancel yozing.",
		"broadcast_report":       "📣 Yuborish yakunlandi.\nJami: {total}\nYuborildi: {success}\nXatolik: {failed}",
		"stats_text":             "📊 Statistika\nFoydalanuvchilar: {users}\nYuklab olishlar: {downloads}\nVaqt: {time}",
		"file_info_header":       "📁 Rezyume fayllari:",
		"file_info_line":         "{variant}: {size}, yangilangan {time}",
		"file_info_missing":      "{variant}: fayl mavjud emas",
		"users_list_header":      "👥 Foydalanuvchilar ({count}):",
		"users_list_empty":       "Hozircha foydalanuvchilar yo'q.",
		"unknown_action":         "Noma'lum amal. /start buyrug'i bilan qayta boshlang.",
	},
	Russian: {
		"welcome":                "Здравствуйте, {name}! 👋\nДобро пожаловать в бот с резюме.",
		"choose_language":        "Выберите язык:",
		"language_set":           "Язык сохранён: Русский",
		"main_menu":              "Выберите один из разделов:",
		"btn_resume_uz":          "📄 Rezyume (O'zbekcha)",
		"btn_resume_eng":         "📄 Resume (English)",
		"btn_resume_rus":         "📄 Резюме (Русский)",
		"btn_contact":            "📞 Контакты",
		"btn_change_language":    "🌐 Сменить язык",
		"btn_back":               "⬅️ Назад",
		"btn_telegram":           "Telegram",
		"btn_linkedin":           "LinkedIn",
		"contact_text":           "Связаться со мной можно по ссылкам ниже:",
		"resume_sent":            "✅ Резюме отправлено. Если нужно ещё что-то — отправьте /start.",
		"resume_missing":         "К сожалению, это резюме пока недоступно. Попробуйте позже.",
		"generic_error":          "Произошла ошибка. Пожалуйста, попробуйте позже.",
		"no_access":              "Это действие доступно только администратору.",
		"cancelled":              "Действие отменено.",
		"nothing_to_cancel":      "Нечего отменять.",
		"admin_choose_language":  "Выберите язык админ-панели:",
		"admin_menu":             "Админ-панель. Выберите действие:",
		"btn_admin_update_uz":    "🔄 Обновить резюме (UZ)",
		"btn_admin_update_eng":   "🔄 Обновить резюме (EN)",
		"btn_admin_update_rus":   "🔄 Обновить резюме (RU)",
		"btn_admin_broadcast":    "📣 Рассылка",
		"btn_admin_statistics":   "📊 Статистика",
		"btn_admin_users_list":   "👥 Пользователи",
		"btn_admin_file_info":    "📁 О файлах",
		"admin_prompt_upload":    "Отправьте новый файл резюме ({variant}) в формате PDF.\nДля отмены напишите /cancel.",
		"admin_expect_document":  "Ожидается файл. Отправьте PDF-документ или напишите /cancel.",
		"admin_upload_done":      "✅ Резюме ({variant}) обновлено.\nРазмер: {size}\nВремя: {time}",
		"admin_upload_failed":    "Не удалось сохранить файл. Попробуйте ещё раз.",
		"admin_prompt_broadcast": "Введите текст сообщения для всех пользователей.\nДля отмены напишите /cancel.",
		"broadcast_report":       "📣 Рассылка завершена.\nВсего: {total}\nОтправлено: {success}\nОшибок: {failed}",
		"stats_text":             "📊 Статистика\nПользователей: {users}\nСкачиваний: {downloads}\nВремя: {time}",
		"file_info_header":       "📁 Файлы резюме:",
		"file_info_line":         "{variant}: {size}, обновлён {time}",
		"file_info_missing":      "{variant}: файл отсутствует",
		"users_list_header":      "👥 Пользователи ({count}):",
		"users_list_empty":       "Пользователей пока нет.",
		"unknown_action":         "Неизвестное действие. Начните заново с /start.",
	},
	English: {
		"welcome":                "Hello, {name}! 👋\nWelcome to the resume bot.",
		"choose_language":        "Choose a language:",
		"language_set":           "Language saved: English",
		"main_menu":              "Pick one of the sections below:",
		"btn_resume_uz":          "📄 Rezyume (O'zbekcha)",
		"btn_resume_eng":         "📄 Resume (English)",
		"btn_resume_rus":         "📄 Резюме (Русский)",
		"btn_contact":            "📞 Contact",
		"btn_change_language":    "🌐 Change language",
		"btn_back":               "⬅️ Back",
		"btn_telegram":           "Telegram",
		"btn_linkedin":           "LinkedIn",
		"contact_text":           "You can reach me via the links below:",
		"resume_sent":            "✅ Resume sent. Send /start if you need anything else.",
		"resume_missing":         "Sorry, this resume is not available yet. Please try again later.",
		"generic_error":          "Something went wrong. Please try again later.",
		"no_access":              "This action is for the administrator only.",
		"cancelled":              "Action cancelled.",
		"nothing_to_cancel":      "Nothing to cancel.",
		"admin_choose_language":  "Choose the admin panel language:",
		"admin_menu":             "Admin panel. Pick an action:",
		"btn_admin_update_uz":    "🔄 Update resume (UZ)",
		"btn_admin_update_eng":   "🔄 Update resume (EN)",
		"btn_admin_update_rus":   "🔄 Update resume (RU)",
		"btn_admin_broadcast":    "📣 Broadcast",
		"btn_admin_statistics":   "📊 Statistics",
		"btn_admin_users_list":   "👥 Users",
		"btn_admin_file_info":    "📁 File info",
		"admin_prompt_upload":    "Send the new resume file ({variant}) as a PDF document.\nType /cancel to abort.",
		"admin_expect_document":  "Waiting for a file. Send a PDF document or type /cancel.",
		"admin_upload_done":      "✅ Resume ({variant}) updated.\nSize: {size}\nTime: {time}",
		"admin_upload_failed":    "Failed to store the file. Please try again.",
		"admin_prompt_broadcast": "Enter the message text to send to all users.\nType /cancel to abort.",
		"broadcast_report":       "📣 Broadcast finished.\nTotal: {total}\nSent: {success}\nFailed: {failed}",
		"stats_text":             "📊 Statistics\nUsers: {users}\nDownloads: {downloads}\nTime: {time}",
		"file_info_header":       "📁 Resume files:",
		"file_info_line":         "{variant}: {size}, updated {time}",
		"file_info_missing":      "{variant}: file not found",
		"users_list_header":      "👥 Users ({count}):",
		"users_list_empty":       "No users yet.",
		"unknown_action":         "Unknown action. Start over with /start.",
	},
}
