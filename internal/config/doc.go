// Package config provides configuration loading, merging, and validation
// for the generator.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Command-line flags
//  2. GSERVICES_-prefixed environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// With no flags, variables or JSON file the defaults read ./.env and write
// ./android/app/google-services.json for package com.example.designwear.
//
// The main entry point is [GetStructuredConfig].
package config
