package services

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"crossblog/internal/repository"

	"github.com/microcosm-cc/bluemonday"
)

var ErrNotFound = errors.New("not found")

// notFound приводит repository.ErrNotFound к ErrNotFound сервиса, остальные ошибки оборачивает.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// sanitizer чистит пользовательский ввод. Заголовки без разметки, контент по политике UGC.
type sanitizer struct {
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

func newSanitizer() *sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &sanitizer{strict: bluemonday.StrictPolicy(), ugc: p}
}

// maxTitlePasses ограничивает число проходов очистки заголовка.
const maxTitlePasses = 5

// Title возвращает текст без разметки. StrictPolicy экранирует текст, а после
// обратного декодирования закодированные сущностями теги становятся живыми,
// поэтому очистка повторяется до неподвижной точки.
func (s *sanitizer) Title(raw string) string {
	out := raw
	for i := 0; i < maxTitlePasses; i++ {
		next := html.UnescapeString(s.strict.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// не сошлось: угловые скобки из результата убираем целиком
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(out))
}

func (s *sanitizer) Content(raw string) string {
	return s.ugc.Sanitize(raw)
}
