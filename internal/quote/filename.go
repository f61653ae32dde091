package quote

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Filename builds devis_<client>_<YYYY-MM-DD>_<HH-MM-SS>_<random6>.<ext>
// with the date and time in UTC. The client part keeps ASCII letters, digits
// and hyphens; every other rune becomes an underscore.
func Filename(clientName string, now time.Time, ext string) string {
	client := SanitizeText(clientName, MaxClientNameLength)
	if client == "" {
		client = "client"
	}
	var b strings.Builder
	for _, r := range client {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	now = now.UTC()
	return "devis_" + b.String() + "_" + now.Format("2006-01-02") + "_" + now.Format("15-04-05") +
		"_" + randomSuffix(6) + "." + ext
}

func randomSuffix(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			out[i] = suffixAlphabet[i%len(suffixAlphabet)]
			continue
		}
		out[i] = suffixAlphabet[idx.Int64()]
	}
	return string(out)
}
