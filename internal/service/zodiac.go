package service

import "formdemo/internal/model"

// zodiac builds a fresh copy of the sign table on every call so callers can
// never mutate the shared definition.
func zodiac() []model.SignInfo {
	return []model.SignInfo{
		{Sign: "aries", Personality: "Adventurous and energetic"},
		{Sign: "taurus", Personality: "Patient and reliable"},
		{Sign: "gemini", Personality: "Witty and versatile"},
		{Sign: "cancer", Personality: "Loyal and empathetic"},
		{Sign: "leo", Personality: "Generous and warmhearted"},
		{Sign: "virgo", Personality: "Analytical and observant"},
		{Sign: "libra", Personality: "Diplomatic and charming"},
		{Sign: "scorpio", Personality: "Passionate and resourceful"},
		{Sign: "sagittarius", Personality: "Optimistic and freedom-loving"},
		{Sign: "capricorn", Personality: "Practical and disciplined"},
		{Sign: "aquarius", Personality: "Inventive and original"},
		{Sign: "pisces", Personality: "Compassionate and artistic"},
	}
}

// Personality returns the description for sign. Matching is exact.
func Personality(sign string) (string, bool) {
	for _, s := range zodiac() {
		if s.Sign == sign {
			return s.Personality, true
		}
	}
	return "", false
}
