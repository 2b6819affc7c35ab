package entities

import "testing"

func TestNormalizeDocument(t *testing.T) {
	cases := []struct {
		docType string
		doc     string
		want    string
		ok      bool
	}{
		{"CPF", "529.982.247-25", "52998224725", true},
		{"cpf", "52998224725", "52998224725", true},
		{"CPF", "52998224724", "52998224724", false},
		{"CPF", "111.111.111-11", "11111111111", false},
		{"CPF", "5299822472", "5299822472", false},
		{"CNPJ", "11.222.333/0001-81", "11222333000181", true},
		{"CNPJ", "11.222.333/0001-80", "11222333000180", false},
		{"PASSPORT", " ab123456 ", "AB123456", true},
		{"PASSPORT", "AB1", "AB1", false},
		{"AUTO", "AUTO_1_123456", "", false},
		{"RG", "123", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeDocument(tc.docType, tc.doc)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeDocument(%q, %q) = %q, %v; want %q, %v", tc.docType, tc.doc, got, ok, tc.want, tc.ok)
		}
	}
}
