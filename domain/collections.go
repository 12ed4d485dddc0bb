package domain

const (
	CollectionArtist = "portfolio_artists"
)
const (
	CollectionArtwork = "portfolio_artworks"
)
const (
	CollectionArtworkImage = "portfolio_artwork_images"
)
const (
	CollectionInstallation = "portfolio_installations"
)
const (
	CollectionInstallationMedia = "portfolio_installation_media"
)

const (
	CollectionAdministrator = "system_auth_administrators"
)
