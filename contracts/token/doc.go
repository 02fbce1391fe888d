/*
Package token implements Ownership Token Issuer contract of the provenance
system.

Token contract mints non-divisible ownership tokens against content records
kept by the registry contract. A content item can be bound to at most one
token, ever, and minting is authorized against the current content owner in
the registry. Each token carries a royalty rate (percentage, at most 20) and
remembers its original owner, the minter, which is the royalty recipient for
every future paid event regardless of resales.

Plain transfers require the current owner's witness and move no value.
Managed transfers are reserved for the marketplace contract and happen inside
a sale transaction after payment has been settled.

# Contract notifications

Mint notification. This notification is produced when a new token is minted.

	Mint:
	  - name: tokenId
	    type: Integer
	  - name: contentId
	    type: Integer
	  - name: owner
	    type: Hash160

Transfer notification. Produced on mint (with empty sender) and on every
ownership change.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray
*/
package token
