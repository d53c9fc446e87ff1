package response_models

type ShareResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsappLink"`
}
