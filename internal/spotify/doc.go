// Package spotify implements the Spotify Web API client used for album
// search and detail fetches. Authentication uses the client-credentials flow
// with a cached access token.
package spotify
