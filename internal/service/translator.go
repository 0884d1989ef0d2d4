package service

import (
	"fmt"
	"strings"

	"phrasemark/internal/domain"
)

// phrasebook is the static en→zh phrase dictionary backing the mock
// translator. English keys are lowercase; lookups in the other
// direction use the inverted map built in NewTranslator.
var phrasebook = map[string]string{
	"hello":        "你好",
	"goodbye":      "再见",
	"thank you":    "谢谢",
	"good morning": "早上好",
	"good night":   "晚安",
	"how are you":  "你好吗",
	"yes":          "是",
	"no":           "不",
	"please":       "请",
	"sorry":        "对不起",
	"welcome":      "欢迎",
	"i love you":   "我爱你",
	"friend":       "朋友",
	"water":        "水",
	"food":         "食物",
}

// Translator performs mock zh↔en translation via dictionary lookup
// with a deterministic fallback. Both maps are built once and never
// mutated afterwards.
type Translator struct {
	enToZh map[string]string
	zhToEn map[string]string
}

// NewTranslator builds the bidirectional dictionary from phrasebook
func NewTranslator() *Translator {
	t := &Translator{
		enToZh: make(map[string]string, len(phrasebook)),
		zhToEn: make(map[string]string, len(phrasebook)),
	}
	for en, zh := range phrasebook {
		t.enToZh[en] = zh
		t.zhToEn[zh] = en
	}
	return t
}

// Translate returns the dictionary translation of text, matching
// case-insensitively for English source text and exactly for Chinese.
// On a miss it returns "[<target>] <text>", which no dictionary entry
// can produce.
func (t *Translator) Translate(text string, source, target domain.Language) string {
	trimmed := strings.TrimSpace(text)

	if source == domain.LanguageEN {
		if zh, ok := t.enToZh[strings.ToLower(trimmed)]; ok {
			return zh
		}
	} else {
		if en, ok := t.zhToEn[trimmed]; ok {
			return en
		}
	}

	return fmt.Sprintf("[%s] %s", target, trimmed)
}
