package headers

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/language"
)

// localeWeight pairs a BCP-47 tag with its relative selection weight. The
// list covers the 30+ locales §4.7 requires a weighted catalog over;
// weights approximate relative global browser population share and are not
// meant to be a precise survey.
type localeWeight struct {
	tag    language.Tag
	weight int
}

var locales = []localeWeight{
	{language.MustParse("en-US"), 30},
	{language.MustParse("en-GB"), 8},
	{language.MustParse("es-ES"), 7},
	{language.MustParse("es-MX"), 5},
	{language.MustParse("pt-BR"), 6},
	{language.MustParse("fr-FR"), 6},
	{language.MustParse("de-DE"), 6},
	{language.MustParse("it-IT"), 4},
	{language.MustParse("ru-RU"), 5},
	{language.MustParse("ja-JP"), 4},
	{language.MustParse("ko-KR"), 3},
	{language.MustParse("zh-CN"), 6},
	{language.MustParse("zh-TW"), 2},
	{language.MustParse("nl-NL"), 2},
	{language.MustParse("pl-PL"), 3},
	{language.MustParse("tr-TR"), 3},
	{language.MustParse("ar-SA"), 3},
	{language.MustParse("hi-IN"), 3},
	{language.MustParse("id-ID"), 3},
	{language.MustParse("vi-VN"), 2},
	{language.MustParse("th-TH"), 2},
	{language.MustParse("sv-SE"), 2},
	{language.MustParse("nb-NO"), 1},
	{language.MustParse("da-DK"), 1},
	{language.MustParse("fi-FI"), 1},
	{language.MustParse("el-GR"), 1},
	{language.MustParse("cs-CZ"), 1},
	{language.MustParse("ro-RO"), 1},
	{language.MustParse("hu-HU"), 1},
	{language.MustParse("uk-UA"), 2},
	{language.MustParse("he-IL"), 1},
}

func init() {
	if len(locales) < 30 {
		panic("headers: locale catalog must carry at least 30 entries")
	}
}

// randomLocale draws a weighted-random Accept-Language value, rendered as
// the full tag, then its base language at q=0.9, then english as a fallback
// at q=0.5 (an english tag gets only "en;q=0.9"), matching the qvalue
// pattern browsers actually send.
func randomLocale() string {
	total := 0
	for _, l := range locales {
		total += l.weight
	}

	pick := randIntn(total)
	acc := 0
	for _, l := range locales {
		acc += l.weight
		if pick < acc {
			base, _ := l.tag.Base()
			if base.String() == "en" {
				return fmt.Sprintf("%s,en;q=0.9", l.tag.String())
			}
			return fmt.Sprintf("%s,%s;q=0.9,en;q=0.5", l.tag.String(), base.String())
		}
	}
	return "en-US,en;q=0.9"
}

func randIntn(n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
