package model

// Package model contains the per-request values exchanged between the HTTP
// layer and the service. Nothing here is persisted.

// FroyoOrder is a frozen-yogurt selection. Toppings keep the submitted order
// and may contain duplicates.
type FroyoOrder struct {
	Flavor   string   `json:"flavor"`
	Toppings []string `json:"toppings"`
}

// Favorites holds three independent, unvalidated answers.
type Favorites struct {
	Color  string `json:"color"`
	Animal string `json:"animal"`
	City   string `json:"city"`
}

// SecretMessage pairs the submitted message with its letters in code point order.
type SecretMessage struct {
	Message string `json:"message"`
	Sorted  string `json:"sorted"`
}

// Horoscope is the lookup result for a name and sign.
// LuckyNumber is drawn per request and has no relation to the sign.
type Horoscope struct {
	Name        string `json:"name"`
	Sign        string `json:"sign"`
	Personality string `json:"personality"`
	LuckyNumber int    `json:"lucky_number"`
}

// SignInfo is one entry of the zodiac table.
type SignInfo struct {
	Sign        string `json:"sign"`
	Personality string `json:"personality"`
}
