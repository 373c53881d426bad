package viewmodels

type OrgUnit struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Code       *string  `json:"code,omitempty"`
	Type       string   `json:"type"`
	Status     string   `json:"status"`
	ParentID   *string  `json:"parentId,omitempty"`
	Path       []string `json:"path"`
	Depth      int      `json:"depth"`
	SortOrder  int      `json:"sortOrder"`
	ArchivedAt *string  `json:"archivedAt,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

type BreadcrumbEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrgUnitDetail struct {
	OrgUnit
	Breadcrumb   []BreadcrumbEntry `json:"breadcrumb"`
	ChildCount   int               `json:"childCount"`
	MembersCount int               `json:"membersCount"`
	RolesCount   int               `json:"rolesCount"`
}

type OrgUnitList struct {
	Items      []OrgUnit `json:"items"`
	NextCursor *string   `json:"nextCursor,omitempty"`
}

// TreeNode is one row of the pre-order flattened tree.
type TreeNode struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Code       *string `json:"code,omitempty"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	ParentID   *string `json:"parentId,omitempty"`
	Depth      int     `json:"depth"`
	SortOrder  int     `json:"sortOrder"`
	ChildCount int     `json:"childCount"`
}

type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

type Member struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Status     string  `json:"status"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	RoleInUnit *string `json:"roleInUnit,omitempty"`
	Inherited  bool    `json:"inherited"`
}

type RoleAssignment struct {
	RoleID    string `json:"roleId"`
	RoleName  string `json:"roleName"`
	Scope     string `json:"scope"`
	Inherited bool   `json:"inherited"`
}

type DeleteImpact struct {
	DescendantUnitsCount       int      `json:"descendantUnitsCount"`
	MembersDirectCount         int      `json:"membersDirectCount"`
	MembersInheritedCount      int      `json:"membersInheritedCount"`
	RoleAssignmentsCount       int      `json:"roleAssignmentsCount"`
	RolesInheritedImpactCount  int      `json:"rolesInheritedImpactCount"`
	RequiresConfirmation       bool     `json:"requiresConfirmation"`
	WillDeleteUnitNamesPreview []string `json:"willDeleteUnitNamesPreview"`
}
