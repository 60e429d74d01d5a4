package gogs

import "time"

// User is a Gogs account. Email is only populated when the caller is
// allowed to see it.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Login     string `json:"login,omitempty"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type Permission struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

type Repository struct {
	ID            int64       `json:"id"`
	Owner         *User       `json:"owner"`
	Name          string      `json:"name"`
	FullName      string      `json:"full_name"`
	Description   string      `json:"description"`
	Private       bool        `json:"private"`
	Fork          bool        `json:"fork"`
	Parent        *Repository `json:"parent,omitempty"`
	Empty         bool        `json:"empty"`
	Mirror        bool        `json:"mirror"`
	Size          int64       `json:"size"`
	HTMLURL       string      `json:"html_url"`
	SSHURL        string      `json:"ssh_url"`
	CloneURL      string      `json:"clone_url"`
	Website       string      `json:"website"`
	Stars         int         `json:"stars_count"`
	Forks         int         `json:"forks_count"`
	Watchers      int         `json:"watchers_count"`
	OpenIssues    int         `json:"open_issues_count"`
	DefaultBranch string      `json:"default_branch"`
	Created       time.Time   `json:"created_at"`
	Updated       time.Time   `json:"updated_at"`
	Permissions   *Permission `json:"permissions,omitempty"`
}

// AccessToken is a personal access token. Sha1 is the token value passed to
// [TokenAuth].
type AccessToken struct {
	Name string `json:"name"`
	Sha1 string `json:"sha1"`
}

type PublicKey struct {
	ID      int64     `json:"id"`
	Key     string    `json:"key"`
	URL     string    `json:"url,omitempty"`
	Title   string    `json:"title,omitempty"`
	Created time.Time `json:"created_at"`
}

type CreateUserOption struct {
	SourceID   int64  `json:"source_id,omitempty"`
	LoginName  string `json:"login_name,omitempty"`
	Username   string `json:"username"`
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	SendNotify bool   `json:"send_notify"`
}

type EditUserOption struct {
	SourceID         int64  `json:"source_id,omitempty"`
	LoginName        string `json:"login_name,omitempty"`
	FullName         string `json:"full_name,omitempty"`
	Email            string `json:"email"`
	Password         string `json:"password,omitempty"`
	Website          string `json:"website,omitempty"`
	Location         string `json:"location,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	Admin            *bool  `json:"admin,omitempty"`
	AllowGitHook     *bool  `json:"allow_git_hook,omitempty"`
	AllowImportLocal *bool  `json:"allow_import_local,omitempty"`
	MaxRepoCreation  *int   `json:"max_repo_creation,omitempty"`
}

type CreateRepoOption struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
	Gitignores  string `json:"gitignores,omitempty"`
	License     string `json:"license,omitempty"`
	Readme      string `json:"readme,omitempty"`
}

type CreateAccessTokenOption struct {
	Name string `json:"name"`
}

type CreateKeyOption struct {
	Title string `json:"title"`
	Key   string `json:"key"`
}
