// Copyright (C) 2025 citadelgo developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package citadel

import (
	"crypto/rand"
	"path/filepath"

	"github.com/duggavo/serializer"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/chacha20poly1305"

	"citadelgo/config"
	"citadelgo/log"
	"citadelgo/rgb"
	"citadelgo/util"
)

var CONTRACTS = []byte("contracts")

// vault is the embedded node's contract store. Records are encrypted at
// rest with the hashed master password.
type vault struct {
	db  *bolt.DB
	key [32]byte
}

func openVault(dataDir string, key [32]byte) (*vault, *Error) {
	path := filepath.Join(dataDir, config.VAULT_FILE)

	db, err := bolt.Open(path, 0o600, bolt.DefaultOptions)
	if err != nil {
		return nil, newError(StorageDriver, "cannot open vault at %s: %s", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(CONTRACTS)
		return err
	})
	if err != nil {
		db.Close()
		return nil, newError(StorageDriver, "cannot prepare vault: %s", err)
	}

	log.Debugf("vault ready at %s", path)

	return &vault{db: db, key: key}, nil
}

func (v *vault) close() {
	v.db.Close()
}

// contractRecord is the vault's on-disk shape of a tracked contract.
type contractRecord struct {
	Imported uint64
	Genesis  rgb.Genesis
}

func (r contractRecord) serialize() []byte {
	s := serializer.Serializer{}

	s.AddUvarint(r.Imported)
	s.AddString(string(r.Genesis.Serialize()))

	return s.Data
}

func recordFromBytes(b []byte) (*contractRecord, error) {
	d := serializer.Deserializer{
		Data: b,
	}

	r := contractRecord{}
	r.Imported = d.ReadUvarint()
	genesisBin := d.ReadString()
	if d.Error != nil {
		return nil, d.Error
	}

	genesis, gerr := rgb.GenesisFromPayload([]byte(genesisBin))
	if gerr != nil {
		return nil, gerr
	}
	r.Genesis = *genesis

	return &r, nil
}

func (v *vault) encrypt(msg []byte) []byte {
	aead, err := chacha20poly1305.NewX(v.key[:])
	if err != nil {
		panic(err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(msg)+aead.Overhead())
	rand.Read(nonce)

	return aead.Seal(nonce, nonce, msg, nil)
}

func (v *vault) decrypt(msg []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(v.key[:])
	if err != nil {
		panic(err)
	}

	if len(msg) < aead.NonceSize() {
		return nil, newError(StorageDriver, "vault record is too short")
	}

	nonce, ciphertext := msg[:aead.NonceSize()], msg[aead.NonceSize():]

	decrypted, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}

	return decrypted, nil
}

func (v *vault) putContract(g *rgb.Genesis) (rgb.ContractId, error) {
	id := g.ContractId()
	record := contractRecord{
		Imported: util.Time(),
		Genesis:  *g,
	}

	err := v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(CONTRACTS).Put(id[:], v.encrypt(record.serialize()))
	})
	if err != nil {
		return rgb.ContractId{}, newError(StorageDriver, "cannot store contract: %s", err)
	}
	return id, nil
}

func (v *vault) forEachContract(fn func(id rgb.ContractId, r *contractRecord) error) error {
	err := v.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(CONTRACTS).ForEach(func(k, blob []byte) error {
			var id rgb.ContractId
			copy(id[:], k)

			plain, err := v.decrypt(blob)
			if err != nil {
				return err
			}
			record, err := recordFromBytes(plain)
			if err != nil {
				return err
			}
			return fn(id, record)
		})
	})
	if err != nil {
		return newError(StorageDriver, "cannot read vault: %s", err)
	}
	return nil
}

func (v *vault) contract(id rgb.ContractId) (*contractRecord, bool, error) {
	var record *contractRecord

	err := v.db.View(func(tx *bolt.Tx) error {
		blob := tx.Bucket(CONTRACTS).Get(id[:])
		if blob == nil {
			return nil
		}

		plain, err := v.decrypt(blob)
		if err != nil {
			return err
		}
		record, err = recordFromBytes(plain)
		return err
	})
	if err != nil {
		return nil, false, newError(StorageDriver, "cannot read vault: %s", err)
	}
	return record, record != nil, nil
}
