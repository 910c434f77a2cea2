// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	// Pastikan tidak ada "--" beruntun (guard tambahan)
	reDash := regexp.MustCompile(`-+`)
	return reDash.ReplaceAllString(out, "-")
}

// EnsureUniqueSlug: cek ke DB, kalau sudah dipakai tambahkan suffix -2, -3, dst.
// Soft-delete aware: baris dengan deleted_at terisi tidak menghalangi slug.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "item"
	}
	if len(slug) > DefaultSlugMaxLen {
		slug = strings.Trim(slug[:DefaultSlugMaxLen], "-")
	}

	candidate := slug
	for i := 2; ; i++ {
		var cnt int64
		q := db.Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
			Where("deleted_at IS NULL")
		if err := q.Count(&cnt).Error; err != nil {
			return "", err
		}
		if cnt == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}
