package cloudinary

// Config carries the media service account settings. It is built once at
// process start and passed by reference into the client and the signer; the
// API secret never leaves this package.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}
