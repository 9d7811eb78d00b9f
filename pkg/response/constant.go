package response

const (
	MessageSuccess = "Success"

	DateFormat = "2006-01-02"
)
