package password

import "golang.org/x/crypto/bcrypt"

// bcryptハッシュ化
type Hasher struct {
	cost int
}

// DI
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// 平文パスワードからハッシュへ。salt入りなので同じ入力でも毎回違う値になる
func (h *Hasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// 平文と保存済みハッシュを比較。不一致や壊れたハッシュはfalse
func (h *Hasher) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
