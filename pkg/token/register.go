package token

import "sync"

// nextTokenID tracks the next available dynamic token ID.
// Dynamic tokens start after maxBuiltin (999).
var nextTokenID = maxBuiltin

// dynamicMu guards the dynamic token tables. Registration happens at
// init() time but lookups run on every lex call.
var dynamicMu sync.RWMutex

// dynamicTokens maps registered dynamic tokens to their names.
var dynamicTokens = make(map[TokenType]string)

// dynamicKeywords maps registered dynamic keyword names to their token types.
var dynamicKeywords = make(map[string]TokenType)

// Register registers a new dynamic token with the given name and returns
// its type. Registering the same name twice returns the original type.
// This is used by dialects that need a genuinely new token category
// rather than a remapping of an existing one.
func Register(name string) TokenType {
	dynamicMu.Lock()
	defer dynamicMu.Unlock()

	if t, ok := dynamicKeywords[name]; ok {
		return t
	}

	nextTokenID++
	t := nextTokenID
	dynamicTokens[t] = name
	dynamicKeywords[name] = t

	return t
}

// getDynamicName returns the name of a dynamic token.
func getDynamicName(t TokenType) (string, bool) {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()
	name, ok := dynamicTokens[t]
	return name, ok
}

// LookupDynamicKeyword returns the token type for a dynamic keyword.
// Returns IDENT and false if the keyword is not registered.
func LookupDynamicKeyword(name string) (TokenType, bool) {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()
	if tok, ok := dynamicKeywords[name]; ok {
		return tok, true
	}
	return IDENT, false
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	dynamicMu.RLock()
	defer dynamicMu.RUnlock()
	result := make(map[TokenType]string, len(dynamicTokens))
	for k, v := range dynamicTokens {
		result[k] = v
	}
	return result
}
