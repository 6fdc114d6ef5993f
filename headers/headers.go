// Package headers implements the Header/User-Agent Generator (§4.7):
// rendering a profile's header template and user-agent template for a
// chosen OS/locale into the ordered header list the HTTP Request Engine
// emits on the wire. Grounded on the donor's client/ordered_header.go
// (slice-based, case-preserving header storage) and the profile header
// templates defined in catalog/data_*.go.
package headers

import (
	"strings"

	"github.com/firasghr/browserprint/catalog"
)

// Platform describes the OS/form-factor substituted into a profile's
// header and user-agent placeholders.
type Platform struct {
	OS       string // e.g. "Windows", "macOS", "Linux", "Android", "iOS"
	Mobile   bool
	Locale   string // BCP-47 tag, e.g. "en-US"; empty selects weighted random
}

// DefaultPlatform returns a plausible desktop Windows platform, used when
// the caller does not pin one.
func DefaultPlatform() Platform {
	return Platform{OS: "Windows", Mobile: false}
}

// Entry is one ordered (name, value) header pair.
type Entry struct {
	Name  string
	Value string
}

// Render produces the ordered header list for profile under platform,
// substituting {os}, {version}, {mobile}, {user_agent}, {host}, and
// {accept_language} placeholders. Invoking with a consistent
// platform/locale yields a deterministic header-name order matching the
// reference capture for that profile (§4.7's contract); only the locale
// draw (when Platform.Locale is empty) varies between calls.
func Render(p catalog.Profile, platform Platform, host string) []Entry {
	ua := RenderUserAgent(p, platform)
	locale := platform.Locale
	if locale == "" {
		locale = randomLocale()
	}

	mobileFlag := "?0"
	if platform.Mobile {
		mobileFlag = "?1"
	}

	// {version} is the major Chrome version carried in the rendered UA.
	version := ""
	if i := strings.Index(ua, "Chrome/"); i >= 0 {
		rest := ua[i+len("Chrome/"):]
		if j := strings.IndexByte(rest, '.'); j >= 0 {
			version = rest[:j]
		}
	}

	out := make([]Entry, 0, len(p.HeaderTemplate))
	for _, t := range p.HeaderTemplate {
		v := t.ValueTemplate
		v = strings.ReplaceAll(v, "{os}", platform.OS)
		v = strings.ReplaceAll(v, "{version}", version)
		v = strings.ReplaceAll(v, "{mobile}", mobileFlag)
		v = strings.ReplaceAll(v, "{user_agent}", ua)
		v = strings.ReplaceAll(v, "{host}", host)
		v = strings.ReplaceAll(v, "{accept_language}", locale)
		out = append(out, Entry{Name: t.Name, Value: v})
	}
	return out
}

// RenderUserAgent renders profile's UserAgentTemplate for platform.
func RenderUserAgent(p catalog.Profile, platform Platform) string {
	ua := p.UserAgentTemplate
	ua = strings.ReplaceAll(ua, "{os}", osToken(platform))
	ua = strings.ReplaceAll(ua, "{os_firefox}", firefoxOSToken(platform))
	return ua
}

func osToken(p Platform) string {
	switch p.OS {
	case "Windows":
		return "Windows NT 10.0; Win64; x64"
	case "macOS":
		return "Macintosh; Intel Mac OS X 10_15_7"
	case "Linux":
		return "X11; Linux x86_64"
	case "Android":
		return "Linux; Android 14"
	default:
		return "Windows NT 10.0; Win64; x64"
	}
}

func firefoxOSToken(p Platform) string {
	switch p.OS {
	case "Windows":
		return "Windows NT 10.0; Win64; x64"
	case "macOS":
		return "Macintosh; Intel Mac OS X 10.15"
	case "Linux":
		return "X11; Linux x86_64"
	default:
		return "Windows NT 10.0; Win64; x64"
	}
}
