package entity

type ContactSubmission struct {
	BaseSimple
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	Subject    string  `db:"subject"`
	Message    string  `db:"message"`
	IsResolved bool    `db:"is_resolved"`
}

type NewsletterSubscription struct {
	BaseSimple
	Email string `db:"email"`
}
