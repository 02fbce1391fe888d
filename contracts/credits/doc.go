/*
Package credits implements the NEP-17 settlement token of the provenance
system. Registration, minting and listing fees, royalty shares and sale
proceeds are all denominated in credits and move through this contract.

Besides the standard owner-witnessed Transfer, the contract exposes
TransferX to the other system contracts (registry, token, marketplace and
royalty, their hashes are fixed at deploy time): it moves credits on behalf
of a user as part of a larger operation and panics on failure, so a fee or
payout that can't be covered faults the whole transaction and no partial
state survives. Committee issues and retires credits with Mint and Burn.

# Contract notifications

Transfer notification is produced on every balance-changing operation, as
the NEP-17 standard requires.

	Transfer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification accompanies every Transfer and carries purpose
details of the movement.

	TransferX
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package credits
