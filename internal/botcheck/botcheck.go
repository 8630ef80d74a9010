// Package botcheck recognizes non-human traffic hitting the capture URL.
// Ad platforms and messengers fetch campaign links to validate or preview
// them; each such fetch would otherwise mint a click row and a deep link
// that no visitor ever redeems.
package botcheck

import (
	"strings"

	"github.com/mssola/useragent"
)

// Substrings matched case-insensitively against the User-Agent.
var botSignatures = []string{
	// Generic patterns
	"bot",
	"spider",
	"crawl",

	// Link validators / preview fetchers of the platforms we buy traffic on
	"facebookexternalhit",
	"facebot",
	"facebookcatalog",
	"meta-externalagent",
	"instagram",
	"whatsapp",
	"telegrambot",
	"twitterbot",
	"linkedinbot",
	"slackbot",
	"preview",

	// Google ad/safety scanners
	"google web preview",
	"google-ad",
	"google-site-verification",
	"chrome-lighthouse",

	// HTTP client libraries, never a paying visitor
	"curl/",
	"wget/",
	"go-http-client/",
	"python-requests/",
	"python-urllib/",
	"okhttp/",
	"java/",
	"libwww-perl/",

	// Headless renderers
	"headlesschrome/",
	"phantomjs",
	"puppeteer",
}

// IsBot reports whether the user-agent looks like a crawler, link validator,
// or preview fetcher rather than a real visitor.
func IsBot(rawUA string) bool {
	ua := useragent.New(rawUA)
	if ua.Bot() {
		return true
	}
	lower := strings.ToLower(rawUA)
	for _, sig := range botSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
