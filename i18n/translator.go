package i18n

// Translator retrieves localized default messages for coercion issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type":
			return "文字列ではありません"
		case "empty":
			return "空文字列は許可されていません"
		case "min":
			if m, ok := data["min"]; ok {
				return m + " 文字以上で入力してください"
			}
			return "短すぎます"
		case "max":
			if m, ok := data["max"]; ok {
				return m + " 文字以下で入力してください"
			}
			return "長すぎます"
		case "pattern":
			return "形式が不正です"
		case "test":
			return "不正な値です"
		}
	default: // "en"
		switch code {
		case "type":
			if n, ok := data["name"]; ok {
				return "expected a string for " + n
			}
			return "expected a string"
		case "empty":
			return "must not be empty"
		case "min":
			if m, ok := data["min"]; ok {
				return "must be at least " + m + " characters"
			}
			return "too short"
		case "max":
			if m, ok := data["max"]; ok {
				return "must be at most " + m + " characters"
			}
			return "too long"
		case "pattern":
			return "does not match the pattern"
		case "test":
			return "invalid"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
