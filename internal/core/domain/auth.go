package domain

// RoleAdmin is the only role the maintenance surface accepts. The public CRUD
// endpoints are unauthenticated.
const RoleAdmin = "admin"
