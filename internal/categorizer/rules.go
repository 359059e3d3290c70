package categorizer

import "fjacquet/xlsx-csv/internal/models"

// DefaultRules returns the built-in category table. The slice order IS the
// match order: more specific rules sit above broader ones ("paypal" under
// shopping would otherwise swallow ticket purchases, salary keywords must
// beat generic transfer keywords, and so on). Keep keywords lowercase.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{Name: "Stipendio", Keywords: []string{"stipendio", "salario", "emolumenti", "cedolino", "salary", "payroll"}},
		{Name: "Casa", Keywords: []string{"affitto", "mutuo", "condominio", "canone di locazione", "rent"}},
		{Name: "Utenze", Keywords: []string{"enel", "eni gas", "a2a", "hera", "iren", "acea", "bolletta", "luce", "gas", "energia"}},
		{Name: "Telefono e Internet", Keywords: []string{"tim", "vodafone", "wind", "iliad", "fastweb", "telecom"}},
		{Name: "Abbonamenti", Keywords: []string{"netflix", "spotify", "prime", "disney", "dazn", "sky", "apple.com/bill"}},
		{Name: "Spesa", Keywords: []string{"esselunga", "conad", "coop", "carrefour", "lidl", "eurospin", "penny", "supermercato", "iper", "pam"}},
		{Name: "Ristoranti", Keywords: []string{"ristorante", "pizzeria", "trattoria", "osteria", "sushi", "mcdonald", "burger", "deliveroo", "glovo", "just eat", "justeat"}},
		{Name: "Trasporti", Keywords: []string{"benzina", "carburante", "q8", "esso", "tamoil", "autostrade", "telepass", "trenitalia", "italo", "atm milano", "taxi", "uber"}},
		{Name: "Salute", Keywords: []string{"farmacia", "parafarmacia", "ospedale", "medico", "dentista", "analisi"}},
		{Name: "Viaggi", Keywords: []string{"hotel", "booking", "airbnb", "ryanair", "easyjet", "ita airways", "volo"}},
		{Name: "Shopping", Keywords: []string{"amazon", "zalando", "ikea", "decathlon", "mediaworld", "unieuro", "paypal"}},
		{Name: "Prelievi", Keywords: []string{"prelievo", "bancomat", "atm ", "withdrawal"}},
		{Name: "Commissioni", Keywords: []string{"commissione", "commissioni", "canone", "imposta di bollo", "spese tenuta conto"}},
		{Name: "Bonifici", Keywords: []string{"bonifico", "giroconto", "sepa", "transfer"}},
	}
}
