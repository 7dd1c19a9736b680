package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*(),.?":{}|<>]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexISODate                      = `^\d{4}-\d{2}-\d{2}$`
)
