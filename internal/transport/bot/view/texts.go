package view

const (
	WelcomeNewUser   = "Добро пожаловать! Для начала работы поделитесь, пожалуйста, номером телефона."
	ShareContact     = "📱 Поделиться номером телефона"
	AskName          = "Спасибо! Теперь введите ваше имя:"
	EmptyName        = "Имя не может быть пустым. Введите ваше имя:"
	WelcomeBack      = "С возвращением, %s! Выберите действие:"
	Registered       = "Отлично, %s! Выберите действие:"
	MainMenu         = "Главное меню"
	RestartWithStart = "Пожалуйста, начните сначала с команды /start"

	AskAge         = "Укажите возраст человека, которому подбираем подарок (от 0 до 100):"
	InvalidAge     = "Пожалуйста, введите корректный возраст (от 0 до 100):"
	AskRecipient   = "Кому подбираем подарок?"
	AskBudget      = "Какой у вас бюджет для подарка? Если бюджет не важен - напишите 0:"
	InvalidBudget  = "Пожалуйста, введите положительное число или 0:"
	AskMarketplace = "Рассматриваем ли мы подарки с маркетплейсов?"
	AskTrend       = "Насколько трендовый или традиционный подарок должен быть?\n" +
		"Оцените по шкале от 1 до 10, где:\n" +
		"1 - традиционный\n" +
		"10 - трендовый"
	AskConsumable = "Вы хотите подарить разовый подарок? (подарки, которые доставляют удовольствие, " +
		"но при этом не остаются в доме)"
	NoMatch      = "К сожалению, %s, подходящих подарков не найдено. Попробуйте изменить критерии поиска."
	StaleStep    = "Эта кнопка уже неактуальна. Начните заново из главного меню."
	GiftNotFound = "Подарок не найден."
	Failure      = "Произошла ошибка. Попробуйте позже."

	ResultsHeader = "Отлично! Мы подобрали для вас подарки в %d %s.\n\n"
	HistoryHeader = "Мы подобрали для вас подарки в %d %s.\n\n"
	CurrentPage   = "Сейчас: <b>%s</b>\n\n"
	PageCounter   = "\nСтраница %d из %d"
	More          = "Подробнее"
	Price         = "💰 Цена: %s ₽"

	HistoryEmpty    = "У вас пока нет истории подборок подарков."
	HistoryChoose   = "📜 Выберите подборку для просмотра:"
	HistoryGone     = "Подарки из этой подборки больше недоступны."
	SubscriptionTBD = "¯\\_(ツ)_/¯\n\nПока тут пусто, но скоро мы начнем зарабатывать денежки!"

	AdminMenu        = "Панель администратора:"
	AdminDenied      = "У вас нет доступа к админ-панели."
	UploadPrompt     = "Отправьте Excel файл с базой подарков.\nФайл должен соответствовать заданной структуре."
	UploadWrongType  = "❌ Нужен файл .xlsx"
	ImportDone       = "✅ База данных успешно обновлена!\nЗагружено: %d, пропущено строк: %d"
	ImportQueued     = "⏳ Файл принят, загрузка идёт в фоне. Когда она закончится, придёт уведомление."
	ImportFailed     = "❌ Произошла ошибка при обработке файла:\n%s"
	CatalogTitle     = "📋 Текущий каталог:"
	CatalogEmpty     = "Каталог пуст."
	CatalogItem      = "%s - %s₽"
	AddAdminUsage    = "ℹ️ Использование: /add @username"
	AddAdminDone     = "✅ Пользователь @%s назначен администратором"
	AddAdminNotFound = "❌ Пользователь не найден в базе данных"
	AddAdminDenied   = "❌ Назначать администраторов могут только владельцы бота"
)

const (
	ButtonNewSelection = "🎁 Подобрать новые подарки"
	ButtonHistory      = "📜 История подбора подарков"
	ButtonSubscription = "⭐️ Подписка на полный доступ"
	ButtonAdminMenu    = "⚙️ Админ-меню"
	ButtonUpload       = "📥 Загрузить базу"
	ButtonCatalog      = "📋 Просмотреть каталог"
	ButtonStats        = "📊 Статистика"
	ButtonToMain       = "↩️ Вернуться в главное меню"
	ButtonHome         = "🏠 В главное меню"
	ButtonMenu         = "🏠 В меню"
	ButtonYes          = "Да"
	ButtonNo           = "Нет"
	ButtonPrev         = "⬅️ Предыдущая"
	ButtonNext         = "Следующая ➡️"
	ButtonBack         = "◀️ Назад"
	ButtonCatalogPrev  = "⬅️ Назад"
	ButtonCatalogNext  = "Вперед ➡️"
	ButtonToAdmin      = "↩️ В админ-меню"
	ButtonToCatalog    = "↩️ Назад к каталогу"
	ButtonToHistory    = "📜 К истории"
)
