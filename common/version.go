package common

// ClientVersion is the current version of the client
const ClientVersion = "0.3.0"

// UserAgent sent with every request
const UserAgent = "yd/" + ClientVersion
