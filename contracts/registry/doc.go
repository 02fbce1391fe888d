/*
Package registry implements Data Registry contract of the provenance system.

Registry contract is the entry point of the provenance pipeline. Contributors
register content fingerprints (SHA256 digests) together with descriptive
metadata and an optional off-chain payload link. The contract enforces global
fingerprint uniqueness, assigns sequential content IDs and keeps a bounded
per-content access log plus a single-slot update log.

Registration charges a configurable fee routed to the authority delegate
through the Credits contract. The fee transfer is part of the registration
transaction, so a failed payment leaves no record behind.

The token contract reads content ownership through the `owner` method to
authorize minting. External integrity verifiers read the stored fingerprint
through `getHash`.

# Contract notifications

ContentRegistered notification. This notification is produced when a new
content record is created.

	ContentRegistered:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: contentHash
	    type: ByteArray

ContentUpdated notification. This notification is produced when content
metadata or link is revised by its owner.

	ContentUpdated:
	  - name: id
	    type: Integer

ContentDeactivated notification. This notification is produced when content
is soft-deleted by its owner.

	ContentDeactivated:
	  - name: id
	    type: Integer

AccessLogged notification. This notification is produced when an access to
non-private content is recorded.

	AccessLogged:
	  - name: id
	    type: Integer
	  - name: accessor
	    type: Hash160
	  - name: epoch
	    type: Integer
*/
package registry
