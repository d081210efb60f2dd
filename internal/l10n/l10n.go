package l10n

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocale is used when a chat has no language configured or a
// message is missing from the configured locale.
const DefaultLocale = "en"

// Locales lists the supported locale codes.
func Locales() []string {
	return []string{"en", "ru"}
}

// Translator renders chat messages in the configured locale. Missing
// messages fall back to English, so an incomplete catalog degrades to
// mixed-language output instead of blank messages.
type Translator struct {
	catalogs map[string]map[string]string
}

// New creates a translator with the built-in catalogs
func New() *Translator {
	return &Translator{
		catalogs: map[string]map[string]string{
			"en": messagesEN,
			"ru": messagesRU,
		},
	}
}

// T renders a message. Args are placeholder/value pairs, e.g.
// T("ru", "welcome", "{user_tag}", tag).
func (t *Translator) T(locale, key string, args ...string) string {
	catalog, ok := t.catalogs[locale]
	if !ok {
		catalog = t.catalogs[DefaultLocale]
	}
	msg, ok := catalog[key]
	if !ok {
		msg, ok = t.catalogs[DefaultLocale][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}
	return strings.NewReplacer(args...).Replace(msg)
}

// Duration renders a duration as localized "1 h 2 min 3 s" parts,
// skipping zero components.
func (t *Translator) Duration(locale string, d time.Duration) string {
	secs := int64(d.Seconds())
	hours := secs / 3600
	minutes := secs % 3600 / 60
	seconds := secs % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, t.T(locale, "duration-hours", "{value}", fmt.Sprintf("%d", hours)))
	}
	if minutes > 0 {
		parts = append(parts, t.T(locale, "duration-minutes", "{value}", fmt.Sprintf("%d", minutes)))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, t.T(locale, "duration-seconds", "{value}", fmt.Sprintf("%d", seconds)))
	}
	return strings.Join(parts, " ")
}

var messagesEN = map[string]string{
	"help": "I guard this group: new members must answer a picture captcha before they can write, and admins can restrict posts sent on behalf of channels.\n\n/settings — change bot settings (admins only)\n/cancel — cancel editing a setting",

	"captcha-caption": "Hey {user_tag}! To prove you are not a bot, press the button with the emoji matching the picture. You have {duration}.",
	"captcha-time-over": "{user_tag} didn't answer in time and is muted for {duration}.",
	"captcha-incorrect-answer": "{user_tag} pressed the wrong button and is muted for {duration}.",
	"welcome": "Welcome, {user_tag}!",
	"make-me-admin": "Make me an admin with the restrict, ban and delete permissions, or I can't guard this group.",

	"query-correct": "Correct!",
	"query-wrong": "Wrong answer.",
	"query-wrong-user": "This button is not for you.",

	"settings-select-kind": "Choose a setting to change:",
	"settings-select-language": "Current language: {language}. Choose a new one:",
	"settings-select-language-default": "Language is not set, English is used. Choose a new one:",
	"settings-select-ban-channels-all": "Posts on behalf of any channel are deleted now. Choose a new policy:",
	"settings-select-ban-channels-linked": "Posts on behalf of channels other than {channel_id} are deleted now. Choose a new policy:",
	"settings-select-ban-channels-none": "Channel posts are not restricted now. Choose a new policy:",
	"settings-input-welcome-message": "Send the new welcome message. It must contain the {user_tag} placeholder.",
	"settings-input-timers": "Send a timer as \"name: value\", e.g. \"captcha_ttl: 90\". Known names: captcha_ttl, message_ttl, ignore_ttl, delete_join_messages.",
	"settings-language-set": "Language set to {language}.",
	"settings-ban-channels-set": "Posts on behalf of channels will be deleted from now on.",
	"settings-ban-channels-linked-set": "Posts on behalf of channels other than {channel_id} will be deleted from now on.",
	"settings-ban-channels-none-set": "Channel posts are no longer restricted.",
	"settings-welcome-message-set": "Welcome message updated.",
	"settings-timers-set": "Setting updated: {setting}",
	"settings-text-required": "Plain text is expected.",
	"settings-message-outdated": "This settings message is outdated, send /settings again.",
	"settings-cancel": "Settings dialogue cancelled.",

	"duration-hours": "{value} h",
	"duration-minutes": "{value} min",
	"duration-seconds": "{value} s",
}

var messagesRU = map[string]string{
	"help": "Я охраняю эту группу: новые участники должны решить капчу по картинке, прежде чем писать, а админы могут ограничить посты от имени каналов.\n\n/settings — изменить настройки бота (только для админов)\n/cancel — отменить изменение настройки",

	"captcha-caption": "Привет, {user_tag}! Докажи, что ты не бот: нажми кнопку с эмодзи, подходящим к картинке. У тебя есть {duration}.",
	"captcha-time-over": "{user_tag} не ответил вовремя и замьючен на {duration}.",
	"captcha-incorrect-answer": "{user_tag} нажал не ту кнопку и замьючен на {duration}.",
	"welcome": "Добро пожаловать, {user_tag}!",
	"make-me-admin": "Сделайте меня админом с правами ограничивать, банить и удалять, иначе я не смогу охранять группу.",

	"query-correct": "Верно!",
	"query-wrong": "Неверный ответ.",
	"query-wrong-user": "Эта кнопка не для тебя.",

	"settings-select-kind": "Выбери настройку:",
	"settings-select-language": "Текущий язык: {language}. Выбери новый:",
	"settings-select-language-default": "Язык не задан, используется английский. Выбери новый:",
	"settings-select-ban-channels-all": "Посты от имени любых каналов сейчас удаляются. Выбери новую политику:",
	"settings-select-ban-channels-linked": "Посты от имени каналов, кроме {channel_id}, сейчас удаляются. Выбери новую политику:",
	"settings-select-ban-channels-none": "Посты от каналов сейчас не ограничены. Выбери новую политику:",
	"settings-input-welcome-message": "Отправь новое приветствие. Оно должно содержать {user_tag}.",
	"settings-input-timers": "Отправь таймер в виде \"имя: значение\", например \"captcha_ttl: 90\". Известные имена: captcha_ttl, message_ttl, ignore_ttl, delete_join_messages.",
	"settings-language-set": "Язык изменён на {language}.",
	"settings-ban-channels-set": "Посты от имени каналов теперь будут удаляться.",
	"settings-ban-channels-linked-set": "Посты от имени каналов, кроме {channel_id}, теперь будут удаляться.",
	"settings-ban-channels-none-set": "Посты от каналов больше не ограничены.",
	"settings-welcome-message-set": "Приветствие обновлено.",
	"settings-timers-set": "Настройка обновлена: {setting}",
	"settings-text-required": "Ожидается обычный текст.",
	"settings-message-outdated": "Это сообщение настроек устарело, отправь /settings ещё раз.",
	"settings-cancel": "Настройка отменена.",

	"duration-hours": "{value} ч",
	"duration-minutes": "{value} мин",
	"duration-seconds": "{value} с",
}
