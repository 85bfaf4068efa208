package models

// BankSentence is one entry in the pre-authored sentence bank used to seed
// sentence-drill sessions. Levels run 1-5.
type BankSentence struct {
	Level    int    `json:"level" db:"level"`
	Category string `json:"category" db:"category"`
	English  string `json:"english" db:"english"`
	Arabic   string `json:"arabic" db:"arabic"`
}
