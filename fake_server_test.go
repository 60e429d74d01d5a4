package gogs

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeGogs is an in-memory stand-in for the parts of the Gogs API the
// client talks to.
type fakeGogs struct {
	mu      sync.Mutex
	nextID  int64
	users   map[string]*fakeUser
	repos   map[string]*Repository
	tokens  map[string]string
	schemes []string
}

type fakeUser struct {
	user     User
	password string
	admin    bool
	tokens   []*AccessToken
	keys     []*PublicKey
}

func newFakeGogs(t *testing.T) (*fakeGogs, *Client) {
	t.Helper()

	f := &fakeGogs{
		users:  map[string]*fakeUser{},
		repos:  map[string]*Repository{},
		tokens: map[string]string{},
	}
	f.addUser("root", "rootpw", "root@example.com", true)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/users", f.createUser)
	mux.HandleFunc("PATCH /admin/users/{username}", f.editUser)
	mux.HandleFunc("DELETE /admin/users/{username}", f.deleteUser)
	mux.HandleFunc("GET /users/search", f.searchUsers)
	mux.HandleFunc("GET /users/{username}", f.getUser)
	mux.HandleFunc("GET /user", f.currentUser)
	mux.HandleFunc("GET /repos/search", f.searchRepos)
	mux.HandleFunc("GET /user/repos", f.listRepos)
	mux.HandleFunc("POST /user/repos", f.createRepo)
	mux.HandleFunc("GET /repos/{owner}/{repo}", f.getRepo)
	mux.HandleFunc("DELETE /repos/{owner}/{repo}", f.deleteRepo)
	mux.HandleFunc("POST /users/{username}/tokens", f.createToken)
	mux.HandleFunc("GET /users/{username}/tokens", f.listTokens)
	mux.HandleFunc("GET /users/{username}/keys", f.listUserKeys)
	mux.HandleFunc("GET /user/keys", f.listKeys)
	mux.HandleFunc("POST /user/keys", f.createKey)
	mux.HandleFunc("GET /user/keys/{id}", f.getKey)
	mux.HandleFunc("DELETE /user/keys/{id}", f.deleteKey)

	server := httptest.NewServer(http.StripPrefix("/api/v1", mux))
	t.Cleanup(server.Close)

	client, err := New(server.URL + "/api/v1")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return f, client
}

func (f *fakeGogs) addUser(username, password, email string, admin bool) *fakeUser {
	f.nextID++
	u := &fakeUser{
		user:     User{ID: f.nextID, Username: username, Login: username, Email: email},
		password: password,
		admin:    admin,
	}
	f.users[username] = u
	return u
}

func (f *fakeGogs) lastScheme() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.schemes) == 0 {
		return ""
	}
	return f.schemes[len(f.schemes)-1]
}

// caller must be called with f.mu held.
func (f *fakeGogs) caller(r *http.Request) *fakeUser {
	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		f.schemes = append(f.schemes, "token")
		if username, ok := f.tokens[token]; ok {
			return f.users[username]
		}
		return nil
	}

	if username, password, ok := r.BasicAuth(); ok {
		f.schemes = append(f.schemes, "basic")
		if u, ok := f.users[username]; ok && u.password == password {
			return u
		}
		return nil
	}

	f.schemes = append(f.schemes, "anonymous")
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message, "url": "https://github.com/gogs/docs-api"})
}

func randomSha1() string {
	b := make([]byte, 20)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (f *fakeGogs) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	u := f.caller(r)
	switch {
	case u == nil:
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	case !u.admin:
		writeError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}

func (f *fakeGogs) createUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.requireAdmin(w, r) {
		return
	}

	var opt CreateUserOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil || opt.Username == "" || opt.Email == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid user")
		return
	}

	if _, ok := f.users[opt.Username]; ok {
		writeError(w, http.StatusUnprocessableEntity, "user already exists")
		return
	}

	u := f.addUser(opt.Username, opt.Password, opt.Email, false)
	u.user.FullName = opt.FullName
	writeJSON(w, http.StatusCreated, u.user)
}

func (f *fakeGogs) editUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.requireAdmin(w, r) {
		return
	}

	u, ok := f.users[r.PathValue("username")]
	if !ok {
		writeError(w, http.StatusNotFound, "user does not exist")
		return
	}

	var opt EditUserOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid user")
		return
	}

	u.user.FullName = opt.FullName
	if opt.Email != "" {
		u.user.Email = opt.Email
	}
	writeJSON(w, http.StatusOK, u.user)
}

func (f *fakeGogs) deleteUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	if caller == nil || !caller.admin {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	username := r.PathValue("username")
	u, ok := f.users[username]
	if !ok {
		writeError(w, http.StatusNotFound, "user does not exist")
		return
	}

	if u == caller {
		writeError(w, http.StatusUnprocessableEntity, "missing arguments")
		return
	}

	for _, repo := range f.repos {
		if repo.Owner != nil && repo.Owner.Username == username {
			writeError(w, http.StatusUnprocessableEntity, "user still has ownership of repositories")
			return
		}
	}

	delete(f.users, username)
	for sha, owner := range f.tokens {
		if owner == username {
			delete(f.tokens, sha)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeGogs) visibleUser(u *fakeUser, caller *fakeUser) User {
	out := u.user
	if caller == nil || (caller != u && !caller.admin) {
		out.Email = ""
	}
	return out
}

func limitParam(r *http.Request, def int) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		return n
	}
	return def
}

func (f *fakeGogs) searchUsers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	q := r.URL.Query().Get("q")
	limit := limitParam(r, 10)

	data := []User{}
	for _, u := range f.users {
		if len(data) < limit && strings.Contains(u.user.Username, q) {
			data = append(data, f.visibleUser(u, caller))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "ok": true})
}

func (f *fakeGogs) getUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	u, ok := f.users[r.PathValue("username")]
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, f.visibleUser(u, caller))
}

func (f *fakeGogs) currentUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, caller.user)
}

func (f *fakeGogs) searchRepos(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.caller(r)
	q := r.URL.Query().Get("q")
	uid, _ := strconv.ParseInt(r.URL.Query().Get("uid"), 10, 64)
	limit := limitParam(r, 10)

	data := []*Repository{}
	for _, repo := range f.repos {
		if len(data) >= limit || !strings.Contains(repo.Name, q) {
			continue
		}
		if uid > 0 && repo.Owner.ID != uid {
			continue
		}
		data = append(data, repo)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "ok": true})
}

func (f *fakeGogs) listRepos(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	repos := []*Repository{}
	for _, repo := range f.repos {
		if repo.Owner.Username == caller.user.Username {
			repos = append(repos, repo)
		}
	}
	writeJSON(w, http.StatusOK, repos)
}

func (f *fakeGogs) createRepo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var opt CreateRepoOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil || opt.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid repository")
		return
	}

	fullName := caller.user.Username + "/" + opt.Name
	if _, ok := f.repos[fullName]; ok {
		writeError(w, http.StatusUnprocessableEntity, "repository already exists")
		return
	}

	f.nextID++
	owner := caller.user
	repo := &Repository{
		ID:          f.nextID,
		Owner:       &owner,
		Name:        opt.Name,
		FullName:    fullName,
		Description: opt.Description,
		Private:     opt.Private,
		Empty:       !opt.AutoInit,
		Created:     time.Now().UTC().Truncate(time.Second),
		Permissions: &Permission{Admin: true, Push: true, Pull: true},
	}
	f.repos[fullName] = repo
	writeJSON(w, http.StatusCreated, repo)
}

func (f *fakeGogs) getRepo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.caller(r)
	repo, ok := f.repos[r.PathValue("owner")+"/"+r.PathValue("repo")]
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, repo)
}

func (f *fakeGogs) deleteRepo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	caller := f.caller(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	owner := r.PathValue("owner")
	if _, ok := f.users[owner]; !ok {
		writeError(w, http.StatusNotFound, "user does not exist")
		return
	}

	fullName := owner + "/" + r.PathValue("repo")
	if _, ok := f.repos[fullName]; !ok {
		writeError(w, http.StatusNotFound, "repository does not exist")
		return
	}

	if caller.user.Username != owner && !caller.admin {
		writeError(w, http.StatusForbidden, "Given user is not owner of organization")
		return
	}

	delete(f.repos, fullName)
	w.WriteHeader(http.StatusNoContent)
}

// tokenOwner only accepts basic auth for the user in the path.
func (f *fakeGogs) tokenOwner(w http.ResponseWriter, r *http.Request) *fakeUser {
	caller := f.caller(r)
	if _, _, ok := r.BasicAuth(); !ok || caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	if caller.user.Username != r.PathValue("username") {
		writeError(w, http.StatusForbidden, "Forbidden")
		return nil
	}
	return caller
}

func (f *fakeGogs) createToken(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.tokenOwner(w, r)
	if u == nil {
		return
	}

	var opt CreateAccessTokenOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil || opt.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid token")
		return
	}

	token := &AccessToken{Name: opt.Name, Sha1: randomSha1()}
	u.tokens = append(u.tokens, token)
	f.tokens[token.Sha1] = u.user.Username
	writeJSON(w, http.StatusCreated, token)
}

func (f *fakeGogs) listTokens(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.tokenOwner(w, r)
	if u == nil {
		return
	}

	tokens := append([]*AccessToken{}, u.tokens...)
	writeJSON(w, http.StatusOK, tokens)
}

func (f *fakeGogs) keyOwner(w http.ResponseWriter, r *http.Request) *fakeUser {
	caller := f.caller(r)
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return caller
}

func (f *fakeGogs) listUserKeys(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.caller(r)
	u, ok := f.users[r.PathValue("username")]
	if !ok {
		writeError(w, http.StatusNotFound, "user does not exist")
		return
	}
	writeJSON(w, http.StatusOK, append([]*PublicKey{}, u.keys...))
}

func (f *fakeGogs) listKeys(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.keyOwner(w, r)
	if u == nil {
		return
	}
	writeJSON(w, http.StatusOK, append([]*PublicKey{}, u.keys...))
}

func (f *fakeGogs) createKey(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.keyOwner(w, r)
	if u == nil {
		return
	}

	var opt CreateKeyOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil || opt.Title == "" || !strings.HasPrefix(opt.Key, "ssh-") {
		writeError(w, http.StatusUnprocessableEntity, "invalid key")
		return
	}

	f.nextID++
	key := &PublicKey{ID: f.nextID, Key: opt.Key, Title: opt.Title, Created: time.Now().UTC().Truncate(time.Second)}
	u.keys = append(u.keys, key)
	writeJSON(w, http.StatusCreated, key)
}

func (f *fakeGogs) findKey(u *fakeUser, r *http.Request) int {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return -1
	}
	for i, k := range u.keys {
		if k.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeGogs) getKey(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.keyOwner(w, r)
	if u == nil {
		return
	}

	i := f.findKey(u, r)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, u.keys[i])
}

func (f *fakeGogs) deleteKey(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := f.keyOwner(w, r)
	if u == nil {
		return
	}

	i := f.findKey(u, r)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	u.keys = append(u.keys[:i], u.keys[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}
