package models

// ChatPart is one text fragment of a chat turn. The front-end widget sends
// history in the Gemini wire shape, so parts stay a list even though the
// widget only ever fills one.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is a single prior message, tagged by speaker role
// ("user" or "model").
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatResponse carries the model's reply back to the widget.
type ChatResponse struct {
	Reply string `json:"reply"`
}
