// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GoogleServices is the Android Firebase app configuration document
// (google-services.json) read by the Google Services Gradle plugin.
//
// Field order defines JSON key order, so the encoded document is stable
// across runs.
type GoogleServices struct {
	// ProjectInfo identifies the Firebase project.
	ProjectInfo ProjectInfo `json:"project_info"`

	// Client lists the Android apps registered in the project.
	Client []Client `json:"client"`

	// ConfigurationVersion is the schema version of the document.
	ConfigurationVersion string `json:"configuration_version"`
}

// ProjectInfo holds project-wide Firebase identifiers.
type ProjectInfo struct {
	// ProjectNumber is the numeric project number, which is also the
	// Cloud Messaging sender ID.
	ProjectNumber string `json:"project_number"`
	// ProjectID is the human-readable project identifier.
	ProjectID string `json:"project_id"`
	// StorageBucket is the default Cloud Storage bucket name.
	StorageBucket string `json:"storage_bucket"`
}

// Client describes one Android app registered in the project.
type Client struct {
	ClientInfo  ClientInfo     `json:"client_info"`
	OAuthClient []OAuthClient  `json:"oauth_client"`
	APIKey      []APIKey       `json:"api_key"`
	Services    ClientServices `json:"services"`
}

// ClientInfo binds a Firebase app ID to an Android package.
type ClientInfo struct {
	MobileSDKAppID    string            `json:"mobilesdk_app_id"`
	AndroidClientInfo AndroidClientInfo `json:"android_client_info"`
}

// AndroidClientInfo names the Android application package.
type AndroidClientInfo struct {
	PackageName string `json:"package_name"`
}

// OAuthClient is an OAuth 2.0 client entry.
type OAuthClient struct {
	ClientID   string `json:"client_id"`
	ClientType int    `json:"client_type"`
}

// APIKey is a Google API key usable by the client.
type APIKey struct {
	CurrentKey string `json:"current_key"`
}

// ClientServices holds per-service client settings.
type ClientServices struct {
	AppInviteService AppInviteService `json:"appinvite_service"`
}

// AppInviteService lists OAuth clients of the app on other platforms.
type AppInviteService struct {
	OtherPlatformOAuthClient []OAuthClient `json:"other_platform_oauth_client"`
}
