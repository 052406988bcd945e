package domain

// PhoneNumber is a canonical national number: exactly ten digits without a
// country prefix, spaces or punctuation. Values are produced by the phone
// normalizer and are safe to use as provider query parameters and storage
// keys.
type PhoneNumber string

func (p PhoneNumber) String() string { return string(p) }
