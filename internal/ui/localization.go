package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyStop             = "stop"
	KeyOpen             = "open"
	KeyOpenURL          = "open_url"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyFullScreen       = "full_screen"
	KeyMusicMode        = "music_mode"
	KeyAlwaysOnTop      = "always_on_top"
	KeyLegacyFullScreen = "legacy_full_screen"
	KeyRememberGeometry = "remember_geometry"
	KeyShowControls     = "show_controls"
	KeyControlPosition  = "control_position"
	KeyVideoSettings    = "video_settings"
	KeyAudioSettings    = "audio_settings"
	KeySubtitleSettings = "subtitle_settings"
	KeyPlaylist         = "playlist"
	KeyChapters         = "chapters"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyEnterURL         = "enter_url"
	KeySettingsSaved    = "settings_saved"
	KeyInvalidURL       = "invalid_url"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyNothingPlaying   = "nothing_playing"
	KeyErrorOpeningFile = "error_opening_file"

	KeyRevealInFileManager = "reveal_in_file_manager"
	KeyOpenWithDefaultApp  = "open_with_default_app"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "VoxPlay",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyStop:             "Stop",
		KeyOpen:             "Open",
		KeyOpenURL:          "Open URL",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyFullScreen:       "Full Screen",
		KeyMusicMode:        "Music Mode",
		KeyAlwaysOnTop:      "Always on Top",
		KeyLegacyFullScreen: "Legacy Full Screen Style",
		KeyRememberGeometry: "Remember Window Position",
		KeyShowControls:     "Show On-Screen Controls",
		KeyControlPosition:  "Control Bar Position",
		KeyVideoSettings:    "Video",
		KeyAudioSettings:    "Audio",
		KeySubtitleSettings: "Subtitles",
		KeyPlaylist:         "Playlist",
		KeyChapters:         "Chapters",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyEnterURL:         "Enter a media URL (https://...)",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyInvalidURL:       "Invalid URL",
		KeyPleaseEnterURL:   "Please enter a URL",
		KeyNothingPlaying:   "Nothing playing",
		KeyErrorOpeningFile: "Error opening file",

		KeyRevealInFileManager: "Show in File Manager",
		KeyOpenWithDefaultApp:  "Open With Default App",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "VoxPlay",
		KeyPlay:             "Воспроизвести",
		KeyPause:            "Пауза",
		KeyStop:             "Стоп",
		KeyOpen:             "Открыть",
		KeyOpenURL:          "Открыть URL",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyFullScreen:       "Во весь экран",
		KeyMusicMode:        "Музыкальный режим",
		KeyAlwaysOnTop:      "Поверх всех окон",
		KeyLegacyFullScreen: "Классический полноэкранный стиль",
		KeyRememberGeometry: "Запоминать положение окна",
		KeyShowControls:     "Экранные элементы управления",
		KeyControlPosition:  "Положение панели управления",
		KeyVideoSettings:    "Видео",
		KeyAudioSettings:    "Аудио",
		KeySubtitleSettings: "Субтитры",
		KeyPlaylist:         "Плейлист",
		KeyChapters:         "Главы",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyEnterURL:         "Введите URL медиа (https://...)",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyInvalidURL:       "Неверный URL",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL",
		KeyNothingPlaying:   "Ничего не воспроизводится",
		KeyErrorOpeningFile: "Ошибка открытия файла",

		KeyRevealInFileManager: "Показать в файловом менеджере",
		KeyOpenWithDefaultApp:  "Открыть в приложении по умолчанию",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "VoxPlay",
		KeyPlay:             "Reproduzir",
		KeyPause:            "Pausar",
		KeyStop:             "Parar",
		KeyOpen:             "Abrir",
		KeyOpenURL:          "Abrir URL",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyFullScreen:       "Tela Cheia",
		KeyMusicMode:        "Modo Música",
		KeyAlwaysOnTop:      "Sempre Visível",
		KeyLegacyFullScreen: "Estilo Clássico de Tela Cheia",
		KeyRememberGeometry: "Lembrar Posição da Janela",
		KeyShowControls:     "Controles na Tela",
		KeyControlPosition:  "Posição da Barra de Controle",
		KeyVideoSettings:    "Vídeo",
		KeyAudioSettings:    "Áudio",
		KeySubtitleSettings: "Legendas",
		KeyPlaylist:         "Lista de Reprodução",
		KeyChapters:         "Capítulos",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyEnterURL:         "Digite a URL da mídia (https://...)",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyInvalidURL:       "URL inválida",
		KeyPleaseEnterURL:   "Por favor, digite uma URL",
		KeyNothingPlaying:   "Nada em reprodução",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",

		KeyRevealInFileManager: "Mostrar no Gerenciador de Arquivos",
		KeyOpenWithDefaultApp:  "Abrir com Aplicativo Padrão",
	}
}
