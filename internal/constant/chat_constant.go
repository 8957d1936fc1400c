package constant

// Chat message roles as stored on chat_messages rows.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Canned replies. The assistant answers in Indonesian, matching the record
// store and the user base.
const (
	// OutOfScopeReply is returned whenever the scope gate rejects a message.
	OutOfScopeReply = "Maaf, saya hanya dapat membantu pertanyaan seputar layanan kesehatan Anda, seperti riwayat berobat, hasil lab, jadwal dokter, dan informasi kehamilan."

	// UnresolvedIntentReply is returned when the message is in scope but no
	// intent could be resolved, so the assistant asks for clarification
	// instead of guessing.
	UnresolvedIntentReply = "Maaf, saya kurang memahami maksud pertanyaan Anda. Bisa dijelaskan lebih spesifik? Misalnya: \"Tampilkan hasil lab terakhir saya\" atau \"Kapan jadwal kontrol kehamilan saya?\""

	// GenerationFailureReply is returned when the generation service fails or
	// times out after a successful classification.
	GenerationFailureReply = "Maaf, sistem sedang mengalami gangguan. Silakan coba beberapa saat lagi."
)
