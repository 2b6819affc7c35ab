package entities

import "strings"

const (
	DocumentTypeCPF      = "CPF"
	DocumentTypeCNPJ     = "CNPJ"
	DocumentTypePassport = "PASSPORT"
	DocumentTypeAuto     = "AUTO"
)

// NormalizeDocument validates a client document for its type and returns the
// stored form: digits only for CPF/CNPJ, upper-cased and trimmed otherwise.
// AUTO documents are generated during conversion and never accepted from input.
func NormalizeDocument(docType, doc string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(docType)) {
	case DocumentTypeCPF:
		d := digitsOnly(doc)
		return d, validCPF(d)
	case DocumentTypeCNPJ:
		d := digitsOnly(doc)
		return d, validCNPJ(d)
	case DocumentTypePassport:
		d := strings.ToUpper(strings.TrimSpace(doc))
		return d, len(d) >= 5 && len(d) <= 20
	}
	return "", false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}

func validCPF(d string) bool {
	if len(d) != 11 || allSame(d) {
		return false
	}
	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

func checkDigit(prefix string, weight int) byte {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func validCNPJ(d string) bool {
	if len(d) != 14 || allSame(d) {
		return false
	}
	return cnpjDigit(d[:12], cnpjWeights1) == d[12] && cnpjDigit(d[:13], cnpjWeights2) == d[13]
}

func cnpjDigit(prefix string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(prefix[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}
