// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and the role hierarchy.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, cookie
// signing, random session ids) from the domain logic. It has no knowledge of
// HTTP or storage and is injected into the session and auth layers.
package sec
