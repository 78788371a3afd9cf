package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod is how a customer settled a sale
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodCard PaymentMethod = "Card"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// DefaultPaymentMethods is the set offered at the counter unless configured otherwise
var DefaultPaymentMethods = PaymentMethods{PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = PaymentMethod(strings.TrimSpace(str))
	return nil
}

// PaymentMethods is the configured set of accepted payment methods, in
// display order.
type PaymentMethods []PaymentMethod

// ParsePaymentMethods builds the set from configured names, dropping blanks
// and duplicates.
func ParsePaymentMethods(names []string) PaymentMethods {
	out := make(PaymentMethods, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[strings.ToLower(n)] {
			continue
		}
		seen[strings.ToLower(n)] = true
		out = append(out, PaymentMethod(n))
	}
	return out
}

// Resolve returns the canonical spelling of name, matching case-insensitively.
func (m PaymentMethods) Resolve(name string) (PaymentMethod, bool) {
	name = strings.TrimSpace(name)
	for _, p := range m {
		if strings.EqualFold(string(p), name) {
			return p, true
		}
	}
	return "", false
}

// Strings returns the method names.
func (m PaymentMethods) Strings() []string {
	out := make([]string, len(m))
	for i, p := range m {
		out[i] = string(p)
	}
	return out
}
