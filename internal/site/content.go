package site

// Fixed response bodies. They never change at runtime, which keeps every GET
// byte-identical across requests.
const (
	Greeting = "Hello k8s 3.0! Test demo flow Argo CD. Final version."
	Apology  = "Sorry, something went wrong. Please try again later."

	confirmationFormat = "Thank you, %s! We received your submission with email %s."
)

// Info is the body of GET /api/info. Field order fixes the JSON key order.
type Info struct {
	Version string `json:"version"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CurrentInfo is the fixed service description.
var CurrentInfo = Info{
	Version: "1.0.0",
	Status:  "running",
	Message: "This is a sample API endpoint for the delivery demo",
}
