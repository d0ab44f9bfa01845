package ui

import (
	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectFiles       = "select_files"
	KeySelectFolder      = "select_folder"
	KeyAllFiles          = "all_files"
	KeyTargetFormat      = "target_format"
	KeyConvert           = "convert"
	KeyCancel            = "cancel"
	KeyClearList         = "clear_list"
	KeyRemoveSelected    = "remove_selected"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyColumnFilename    = "column_filename"
	KeyColumnExtension   = "column_extension"
	KeyColumnStatus      = "column_status"
	KeyConverting        = "converting"
	KeyCompleted         = "completed"
	KeyCanceled          = "canceled"
	KeyStatusAlready     = "status_already"
	KeyStatusConverted   = "status_converted"
	KeyStatusSkipped     = "status_skipped"
	KeyStatusCanceled    = "status_canceled"
	KeyStatusError       = "status_error"
	KeyConflictTitle     = "conflict_title"
	KeyConflictMessage   = "conflict_message"
	KeySaveAs            = "save_as"
	KeySkipFile          = "skip_file"
	KeyStopConverting    = "stop_converting"
	KeySelectedCount     = "selected_count"
	KeySummary           = "summary"
	KeyNoSelection       = "no_selection"
	KeyNotConverted      = "not_converted"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorScanning     = "error_scanning"
	KeyConversionOptions = "conversion_options"
	KeyInterfaceOptions  = "interface_options"
	KeyJPEGQuality       = "jpeg_quality"
	KeyWebPQuality       = "webp_quality"
	KeyWebPLossless      = "webp_lossless"
	KeyPNGCompression    = "png_compression"
	KeyAutoOrient        = "auto_orient"
	KeyMaxDimension      = "max_dimension"
	KeySVGScale          = "svg_scale"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeySettingsSaved     = "settings_saved"
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

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(language string) {
	if language == "system" {
		language = lang.SystemLocale().LanguageString()
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Converter",
		KeySelectFiles:       "Select files",
		KeySelectFolder:      "Select folder",
		KeyAllFiles:          "All files",
		KeyTargetFormat:      "Target format:",
		KeyConvert:           "Convert to selected format",
		KeyCancel:            "Cancel",
		KeyClearList:         "Clear list",
		KeyRemoveSelected:    "Remove selected",
		KeyReveal:            "Show in folder",
		KeyOpen:              "Open",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyColumnFilename:    "Filename",
		KeyColumnExtension:   "Extension",
		KeyColumnStatus:      "Status",
		KeyConverting:        "Converting, please wait...",
		KeyCompleted:         "Conversion completed",
		KeyCanceled:          "Conversion canceled",
		KeyStatusAlready:     "Already in selected format",
		KeyStatusConverted:   "Converted",
		KeyStatusSkipped:     "Skipped",
		KeyStatusCanceled:    "Canceled",
		KeyStatusError:       "Error",
		KeyConflictTitle:     "File exists",
		KeyConflictMessage:   "%s already exists.",
		KeySaveAs:            "Save as %s",
		KeySkipFile:          "Skip this file",
		KeyStopConverting:    "Stop converting",
		KeySelectedCount:     "%d file(s) selected",
		KeySummary:           "%d converted, %d skipped, %d errors",
		KeyNoSelection:       "Select a row first",
		KeyNotConverted:      "This file has not been converted yet",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorScanning:     "Error reading folder",
		KeyConversionOptions: "Conversion",
		KeyInterfaceOptions:  "Interface",
		KeyJPEGQuality:       "JPEG quality (1-100)",
		KeyWebPQuality:       "WebP quality (1-100)",
		KeyWebPLossless:      "Lossless WebP",
		KeyPNGCompression:    "PNG compression",
		KeyAutoOrient:        "Apply EXIF orientation",
		KeyMaxDimension:      "Max dimension in pixels (0 = off)",
		KeySVGScale:          "SVG scale",
		KeyAutoReveal:        "Show converted file when done",
		KeySave:              "Save",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер изображений",
		KeySelectFiles:       "Выбрать файлы",
		KeySelectFolder:      "Выбрать папку",
		KeyAllFiles:          "Все файлы",
		KeyTargetFormat:      "Целевой формат:",
		KeyConvert:           "Конвертировать в выбранный формат",
		KeyCancel:            "Отмена",
		KeyClearList:         "Очистить список",
		KeyRemoveSelected:    "Удалить выбранный",
		KeyReveal:            "Показать в папке",
		KeyOpen:              "Открыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyColumnFilename:    "Имя файла",
		KeyColumnExtension:   "Расширение",
		KeyColumnStatus:      "Статус",
		KeyConverting:        "Конвертация, пожалуйста подождите...",
		KeyCompleted:         "Конвертация завершена",
		KeyCanceled:          "Конвертация отменена",
		KeyStatusAlready:     "Уже в выбранном формате",
		KeyStatusConverted:   "Сконвертирован",
		KeyStatusSkipped:     "Пропущен",
		KeyStatusCanceled:    "Отменён",
		KeyStatusError:       "Ошибка",
		KeyConflictTitle:     "Файл существует",
		KeyConflictMessage:   "%s уже существует.",
		KeySaveAs:            "Сохранить как %s",
		KeySkipFile:          "Пропустить файл",
		KeyStopConverting:    "Остановить конвертацию",
		KeySelectedCount:     "Выбрано файлов: %d",
		KeySummary:           "Сконвертировано: %d, пропущено: %d, ошибок: %d",
		KeyNoSelection:       "Сначала выберите строку",
		KeyNotConverted:      "Этот файл ещё не сконвертирован",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorScanning:     "Ошибка чтения папки",
		KeyConversionOptions: "Конвертация",
		KeyInterfaceOptions:  "Интерфейс",
		KeyJPEGQuality:       "Качество JPEG (1-100)",
		KeyWebPQuality:       "Качество WebP (1-100)",
		KeyWebPLossless:      "WebP без потерь",
		KeyPNGCompression:    "Сжатие PNG",
		KeyAutoOrient:        "Учитывать ориентацию EXIF",
		KeyMaxDimension:      "Макс. размер в пикселях (0 = выкл.)",
		KeySVGScale:          "Масштаб SVG",
		KeyAutoReveal:        "Показать файл после конвертации",
		KeySave:              "Сохранить",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Imagens",
		KeySelectFiles:       "Selecionar arquivos",
		KeySelectFolder:      "Selecionar pasta",
		KeyAllFiles:          "Todos os arquivos",
		KeyTargetFormat:      "Formato de destino:",
		KeyConvert:           "Converter para o formato selecionado",
		KeyCancel:            "Cancelar",
		KeyClearList:         "Limpar lista",
		KeyRemoveSelected:    "Remover selecionado",
		KeyReveal:            "Mostrar na pasta",
		KeyOpen:              "Abrir",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyColumnFilename:    "Nome do arquivo",
		KeyColumnExtension:   "Extensão",
		KeyColumnStatus:      "Status",
		KeyConverting:        "Convertendo, aguarde...",
		KeyCompleted:         "Conversão concluída",
		KeyCanceled:          "Conversão cancelada",
		KeyStatusAlready:     "Já está no formato selecionado",
		KeyStatusConverted:   "Convertido",
		KeyStatusSkipped:     "Ignorado",
		KeyStatusCanceled:    "Cancelado",
		KeyStatusError:       "Erro",
		KeyConflictTitle:     "Arquivo existente",
		KeyConflictMessage:   "%s já existe.",
		KeySaveAs:            "Salvar como %s",
		KeySkipFile:          "Ignorar este arquivo",
		KeyStopConverting:    "Parar conversão",
		KeySelectedCount:     "%d arquivo(s) selecionado(s)",
		KeySummary:           "%d convertidos, %d ignorados, %d erros",
		KeyNoSelection:       "Selecione uma linha primeiro",
		KeyNotConverted:      "Este arquivo ainda não foi convertido",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorScanning:     "Erro ao ler a pasta",
		KeyConversionOptions: "Conversão",
		KeyInterfaceOptions:  "Interface",
		KeyJPEGQuality:       "Qualidade JPEG (1-100)",
		KeyWebPQuality:       "Qualidade WebP (1-100)",
		KeyWebPLossless:      "WebP sem perdas",
		KeyPNGCompression:    "Compressão PNG",
		KeyAutoOrient:        "Aplicar orientação EXIF",
		KeyMaxDimension:      "Dimensão máxima em pixels (0 = desligado)",
		KeySVGScale:          "Escala SVG",
		KeyAutoReveal:        "Mostrar arquivo convertido ao terminar",
		KeySave:              "Salvar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
